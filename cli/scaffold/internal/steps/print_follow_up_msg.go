package steps

import (
	"fmt"
	"io"

	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// followUpMessageTemplate is rendered after a successful scaffold.
const followUpMessageTemplate = `Project '{{.ProjectName}}' is ready.

Aliases to manage the VMs from any directory:
  alias {{.ProjectName}}-up='cd {{.ProjectPath}} && ./start-vms.sh'
  alias {{.ProjectName}}-halt='cd {{.ProjectPath}} && ./stop-vms.sh'
`

// PrintFollowUpMessage represents a step printing the follow-up message.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints the scaffold follow-up message.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(ctx *scaffold_ctx.ScaffoldCtx,
	projectCtx *project.Ctx,
) error {
	vars := make(map[string]string, len(projectCtx.Vars)+1)
	for name, value := range projectCtx.Vars {
		vars[name] = value
	}
	vars["ProjectPath"] = projectCtx.ProjectPath

	followUpText, err := projectCtx.Engine.RenderText(followUpMessageTemplate, vars)
	if err != nil {
		return err
	}
	fmt.Fprint(printFollowUpMsgStep.Writer, followUpText)

	return nil
}
