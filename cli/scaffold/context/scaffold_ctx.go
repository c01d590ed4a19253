package scaffold_ctx

import "github.com/vagrantlab/vlab/cli/config"

// ScaffoldCtx contains information for scaffolding projects from templates.
type ScaffoldCtx struct {
	// ProjectName is a name of the project to scaffold.
	ProjectName string
	// MachineNames is an ordered list of machine names to scaffold.
	MachineNames []string
	// WorkDir is vlab launch working directory.
	WorkDir string
	// DestinationDir is the path where the project will be created.
	DestinationDir string
	// Box is the Vagrant box used for the machines of the project.
	Box string
	// InitialBranch is the initial branch name for the project repository.
	InitialBranch string
	// TemplateSearchPaths is a set of paths to search for template overrides.
	TemplateSearchPaths []string
	// CliOpts is loaded vlab config.
	CliOpts *config.CliOpts
}
