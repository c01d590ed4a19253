package steps

import (
	"os"
	"path/filepath"

	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// CheckProjectDir represents a step checking that the project directory
// does not exist yet.
type CheckProjectDir struct {
}

// Run checks that there is no directory entry with the project name in the
// destination directory. The check is not repeated later: the project
// directory is created by a subsequent step and a clash in between is
// reported by mkdir itself.
func (CheckProjectDir) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	projectPath := filepath.Join(ctx.DestinationDir, ctx.ProjectName)
	if _, err := os.Stat(projectPath); err == nil {
		return errcode.New(errcode.KindProjectExists,
			"project directory '%s' already exists", projectPath)
	}
	return nil
}
