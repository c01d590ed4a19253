package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

func TestCreateProjectLayout(t *testing.T) {
	workDir := t.TempDir()
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{}
	projectCtx := project.NewCtx()
	projectCtx.ProjectPath = workDir

	require.NoError(t, CreateProjectLayout{}.Run(&scaffoldCtx, &projectCtx))
	require.DirExists(t, filepath.Join(workDir, "images"))
	require.DirExists(t, filepath.Join(workDir, "machines"))
	require.FileExists(t, filepath.Join(workDir, "images", ".gitkeep"))
	require.Equal(t, filepath.Join(workDir, "machines"), projectCtx.MachinesPath)
}

func TestCreateProjectLayoutBlocked(t *testing.T) {
	workDir := t.TempDir()
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{}
	projectCtx := project.NewCtx()
	projectCtx.ProjectPath = workDir

	// A regular file occupies the images directory name.
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "images"), []byte{}, 0o644))
	err := CreateProjectLayout{}.Run(&scaffoldCtx, &projectCtx)
	require.Error(t, err)
	assert.Equal(t, errcode.ExitCodeLayoutFailure, errcode.ClassifyExitCode(err))
	assert.Contains(t, err.Error(), "already exists and is not a directory")
}
