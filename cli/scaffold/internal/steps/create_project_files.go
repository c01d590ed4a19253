package steps

import (
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// CreateProjectFiles represents a step instantiating the top-level project
// files.
type CreateProjectFiles struct {
}

// Run instantiates the project template root in the project directory.
// Machine directories are rendered by the machine scaffolding steps and the
// repository internals are not templates, both are skipped here.
func (CreateProjectFiles) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	if err := copyTemplateRoot(ctx.TemplateSearchPaths, projectTemplateRoot,
		projectCtx.ProjectPath); err != nil {
		return err
	}
	return renderTree(projectCtx, projectCtx.ProjectPath, projectCtx.Vars,
		".git", MachinesDirName)
}
