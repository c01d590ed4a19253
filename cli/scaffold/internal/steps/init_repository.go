package steps

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/apex/log"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
	"github.com/vagrantlab/vlab/cli/util"
)

// InitRepository represents a step initializing a git repository in the
// project directory.
type InitRepository struct {
}

// Run runs git init in the project directory. The --initial-branch flag is
// passed only when the installed git supports it.
func (InitRepository) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	args := []string{"init"}
	if ctx.InitialBranch != "" && util.IsGitInitialBranchSupported() {
		args = append(args, "--initial-branch="+ctx.InitialBranch)
	}

	log.Debugf("Running git %s in %s", strings.Join(args, " "), projectCtx.ProjectPath)
	if err := util.RunCommand(exec.Command("git", args...), projectCtx.ProjectPath,
		false); err != nil {
		return errcode.Wrap(errcode.KindRepoInitFailure,
			fmt.Errorf("repository initialization failed: %s", err))
	}
	log.Infof("Initialized empty git repository in %s", projectCtx.ProjectPath)

	return nil
}
