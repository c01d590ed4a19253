package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrantlab/vlab/cli/errcode"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

func TestRenderTree(t *testing.T) {
	workDir := t.TempDir()
	projectCtx := project.NewCtx()

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "README.md.vl.template"),
		[]byte("# {{.ProjectName}}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "static.txt"),
		[]byte("untouched"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "name-{{.ProjectName}}.txt"),
		[]byte("renamed only"), 0o644))

	vars := map[string]string{"ProjectName": "demo"}
	require.NoError(t, renderTree(&projectCtx, workDir, vars))

	buf, err := os.ReadFile(filepath.Join(workDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demo\n", string(buf))
	require.NoFileExists(t, filepath.Join(workDir, "README.md.vl.template"))

	require.FileExists(t, filepath.Join(workDir, "static.txt"))
	require.FileExists(t, filepath.Join(workDir, "name-demo.txt"))
	require.NoFileExists(t, filepath.Join(workDir, "name-{{.ProjectName}}.txt"))
}

func TestRenderTreeKeepsMode(t *testing.T) {
	workDir := t.TempDir()
	projectCtx := project.NewCtx()

	scriptTemplate := filepath.Join(workDir, "run.sh.vl.template")
	require.NoError(t, os.WriteFile(scriptTemplate,
		[]byte("#!/bin/sh\necho {{.ProjectName}}\n"), 0o755))
	require.NoError(t, renderTree(&projectCtx, workDir,
		map[string]string{"ProjectName": "demo"}))

	stat, err := os.Stat(filepath.Join(workDir, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), stat.Mode().Perm())
}

func TestRenderTreeMissingVariable(t *testing.T) {
	workDir := t.TempDir()
	projectCtx := project.NewCtx()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "file.vl.template"),
		[]byte("{{.Nope}}"), 0o644))
	err := renderTree(&projectCtx, workDir, map[string]string{})
	require.Error(t, err)
	assert.Equal(t, errcode.ExitCodeRenderFailure, errcode.ClassifyExitCode(err))
}

func TestRenderTreeSkipsDirectories(t *testing.T) {
	workDir := t.TempDir()
	projectCtx := project.NewCtx()
	skippedDir := filepath.Join(workDir, "machines")
	require.NoError(t, os.MkdirAll(skippedDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skippedDir, "file.vl.template"),
		[]byte("{{.Nope}}"), 0o644))

	require.NoError(t, renderTree(&projectCtx, workDir, map[string]string{}, "machines"))
	require.FileExists(t, filepath.Join(skippedDir, "file.vl.template"))
}
