package steps

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

func TestCreateProjectDirectory(t *testing.T) {
	workDir := t.TempDir()
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{ProjectName: "demo", DestinationDir: workDir}
	projectCtx := project.NewCtx()

	createProjectDir := CreateProjectDirectory{}
	require.NoError(t, createProjectDir.Run(&scaffoldCtx, &projectCtx))
	require.Equal(t, filepath.Join(workDir, "demo"), projectCtx.ProjectPath)
	require.DirExists(t, projectCtx.ProjectPath)

	// Second run fails: the directory already exists.
	err := createProjectDir.Run(&scaffoldCtx, &projectCtx)
	require.Error(t, err)
	assert.Equal(t, errcode.ExitCodeLayoutFailure, errcode.ClassifyExitCode(err))
}

func TestCreateProjectDirectoryMissingDestination(t *testing.T) {
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{
		ProjectName:    "demo",
		DestinationDir: filepath.Join(t.TempDir(), "nowhere"),
	}
	projectCtx := project.NewCtx()
	err := CreateProjectDirectory{}.Run(&scaffoldCtx, &projectCtx)
	require.Error(t, err)
	assert.Equal(t, errcode.ExitCodeLayoutFailure, errcode.ClassifyExitCode(err))
}
