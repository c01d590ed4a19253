package steps

import (
	"strings"

	"github.com/apex/log"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// CheckMachines represents a step validating the machine name list.
type CheckMachines struct {
}

// Run checks that at least one machine name is given and normalizes the
// list: the reserved name and later duplicates are dropped with a warning.
func (CheckMachines) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	if len(ctx.MachineNames) == 0 {
		return errcode.New(errcode.KindNoMachines,
			"no machines specified for project '%s'", ctx.ProjectName)
	}

	seen := make(map[string]bool)
	machines := make([]string, 0, len(ctx.MachineNames))
	for _, machineName := range ctx.MachineNames {
		if machineName == reservedMachineName {
			log.Warnf("Machine name '%s' is reserved, skipping", machineName)
			continue
		}
		if seen[machineName] {
			log.Warnf("Machine '%s' is listed more than once, skipping duplicate", machineName)
			continue
		}
		seen[machineName] = true
		machines = append(machines, machineName)
	}
	ctx.MachineNames = machines
	projectCtx.Vars["Machines"] = strings.Join(machines, " ")

	return nil
}
