package config

// Config used to store all information from the
// vlab.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"vlab" yaml:"vlab"`
}

// vlab.yaml file format:
// vlab:
//   templates:
//     - path: path/to
//   project:
//     default_box: name
//     initial_branch: name

// TemplateOpts contains configuration for machine templates.
type TemplateOpts struct {
	// Path is a directory to search template in.
	Path string `mapstructure:"path"`
}

// ProjectOpts is used to store project scaffolding options.
type ProjectOpts struct {
	// DefaultBox is the Vagrant box name used for machines
	// when no box is passed on the command line.
	DefaultBox string `mapstructure:"default_box" yaml:"default_box"`
	// InitialBranch is the initial branch name for the project repository.
	InitialBranch string `mapstructure:"initial_branch" yaml:"initial_branch"`
}

// CliOpts is used to store template and project options.
type CliOpts struct {
	// Templates options.
	Templates []TemplateOpts
	// Project is a struct that contains project scaffolding options.
	Project *ProjectOpts
}
