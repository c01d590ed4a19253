package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vagrantlab/vlab/cli/config"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/steps"
	"github.com/vagrantlab/vlab/cli/util"
	"github.com/vagrantlab/vlab/cli/version"
)

// FillCtx fills scaffold context.
func FillCtx(cliOpts *config.CliOpts, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	args []string,
) error {
	if len(args) == 0 {
		return util.NewArgError("missing project name argument")
	}
	scaffoldCtx.ProjectName = args[0]
	scaffoldCtx.MachineNames = args[1:]

	for _, p := range cliOpts.Templates {
		scaffoldCtx.TemplateSearchPaths = append(scaffoldCtx.TemplateSearchPaths, p.Path)
	}

	if scaffoldCtx.Box == "" {
		scaffoldCtx.Box = cliOpts.Project.DefaultBox
	}
	if scaffoldCtx.InitialBranch == "" {
		scaffoldCtx.InitialBranch = cliOpts.Project.InitialBranch
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	scaffoldCtx.WorkDir = workingDir

	if scaffoldCtx.DestinationDir == "" {
		scaffoldCtx.DestinationDir = workingDir
	} else {
		if scaffoldCtx.DestinationDir, err = filepath.Abs(scaffoldCtx.DestinationDir); err != nil {
			return fmt.Errorf("failed to get destination directory path: %s", err)
		}
	}

	return nil
}

// Run scaffolds a project from the templates.
func Run(scaffoldCtx *scaffold_ctx.ScaffoldCtx) error {
	util.CheckRecommendedBinaries("git")

	if err := checkCtx(scaffoldCtx); err != nil {
		return util.InternalError("Scaffold context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.SetPredefinedVariables{},
		steps.CheckProjectDir{},
		steps.CheckMachines{},
		steps.CreateProjectDirectory{},
		steps.InitRepository{},
		steps.CreateProjectLayout{},
		steps.ScaffoldCommonMachine{},
		steps.ScaffoldMachines{},
		steps.CreateProjectFiles{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	projectCtx := project.NewCtx()
	for _, step := range stepsChain {
		if err := step.Run(scaffoldCtx, &projectCtx); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx checks scaffold context for validity.
func checkCtx(scaffoldCtx *scaffold_ctx.ScaffoldCtx) error {
	if scaffoldCtx.ProjectName == "" {
		return fmt.Errorf("project name is missing")
	}
	if scaffoldCtx.DestinationDir == "" {
		return fmt.Errorf("destination directory is not set")
	}

	return nil
}
