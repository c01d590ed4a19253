package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// CreateProjectDirectory represents a step creating the project directory.
type CreateProjectDirectory struct {
}

// Run creates the project directory. This is the commit point: the steps
// that follow write into the created directory and do not undo their work
// on failure, the partial tree is left behind for inspection.
func (CreateProjectDirectory) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	projectPath := filepath.Join(ctx.DestinationDir, ctx.ProjectName)

	log.Infof("Creating project in %s", projectPath)
	if err := os.Mkdir(projectPath, os.FileMode(0755)); err != nil {
		return errcode.Wrap(errcode.KindLayoutFailure,
			fmt.Errorf("error creating project dir %s: %s", projectPath, err))
	}
	projectCtx.ProjectPath = projectPath

	return nil
}
