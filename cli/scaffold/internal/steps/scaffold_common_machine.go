package steps

import (
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// ScaffoldCommonMachine represents a step scaffolding the common machine
// shared by every machine of the project.
type ScaffoldCommonMachine struct {
}

// Run scaffolds the common machine from the common template root.
func (ScaffoldCommonMachine) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	return scaffoldMachine(ctx, projectCtx, commonTemplateRoot, reservedMachineName, 0)
}
