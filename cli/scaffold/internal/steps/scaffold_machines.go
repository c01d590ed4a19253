package steps

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/apex/log"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
	"github.com/vagrantlab/vlab/cli/util"
)

// scaffoldMachine instantiates a single machine directory under machines/.
// Named machines get a directory prefixed with the project name, the common
// machine keeps its bare name. Ordinal is the one-based position of the
// machine on the command line, 0 for the common machine.
func scaffoldMachine(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx,
	rootName, machineName string, ordinal int,
) error {
	dirName := machineName
	if rootName == machineTemplateRoot {
		dirName = fmt.Sprintf("%s-%s", ctx.ProjectName, machineName)
	}
	machinePath := filepath.Join(projectCtx.MachinesPath, dirName)

	log.Infof("Scaffolding machine '%s' in %s", machineName, machinePath)
	if err := util.CreateDirectory(machinePath, defaultDirPermissions); err != nil {
		return errcode.Wrap(errcode.KindLayoutFailure, err)
	}
	if err := copyTemplateRoot(ctx.TemplateSearchPaths, rootName, machinePath); err != nil {
		return err
	}

	vars := make(map[string]string, len(projectCtx.Vars)+3)
	for name, value := range projectCtx.Vars {
		vars[name] = value
	}
	vars["MachineName"] = machineName
	vars["MachineDirName"] = dirName
	vars["MachineOrdinal"] = strconv.Itoa(ordinal)

	if err := renderTree(projectCtx, machinePath, vars); err != nil {
		return err
	}
	projectCtx.ScaffoldedMachines[machineName] = dirName

	return nil
}

// ScaffoldMachines represents a step scaffolding a machine directory for
// every requested machine.
type ScaffoldMachines struct {
}

// Run scaffolds the requested machines in the command line order.
func (ScaffoldMachines) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	for i, machineName := range ctx.MachineNames {
		if err := scaffoldMachine(ctx, projectCtx, machineTemplateRoot, machineName,
			i+1); err != nil {
			return err
		}
	}
	return nil
}
