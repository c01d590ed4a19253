package steps

import (
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct {
}

// Run sets predefined variables values.
func (SetPredefinedVariables) Run(ctx *scaffold_ctx.ScaffoldCtx,
	projectCtx *project.Ctx,
) error {
	projectCtx.Vars["ProjectName"] = ctx.ProjectName
	projectCtx.Vars["Box"] = ctx.Box
	return nil
}
