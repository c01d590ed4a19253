package steps

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

func TestInitRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	workDir := t.TempDir()
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{InitialBranch: "main"}
	projectCtx := project.NewCtx()
	projectCtx.ProjectPath = workDir

	require.NoError(t, InitRepository{}.Run(&scaffoldCtx, &projectCtx))
	require.DirExists(t, filepath.Join(workDir, ".git"))
}

func TestInitRepositoryMissingDir(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	scaffoldCtx := scaffold_ctx.ScaffoldCtx{}
	projectCtx := project.NewCtx()
	projectCtx.ProjectPath = filepath.Join(t.TempDir(), "missing")

	err := InitRepository{}.Run(&scaffoldCtx, &projectCtx)
	require.Error(t, err)
	assert.Equal(t, errcode.ExitCodeRepoInitFailure, errcode.ClassifyExitCode(err))
}
