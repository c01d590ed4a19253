package project

import "github.com/vagrantlab/vlab/cli/templates"

// Ctx contains an information required for project template rendering.
type Ctx struct {
	// ProjectPath is a path to the project directory. Templates are
	// instantiated in this directory.
	ProjectPath string
	// MachinesPath is a path to the machines subdirectory of the project.
	MachinesPath string
	// ScaffoldedMachines maps machine names to their directory names for
	// machines that are already scaffolded.
	ScaffoldedMachines map[string]string
	// Vars is a map of variables to be used for template rendering.
	Vars map[string]string
	// Engine is a template engine to use for template rendering.
	Engine templates.TemplateEngine
}

// NewCtx creates new project template context.
func NewCtx() Ctx {
	var ctx Ctx
	ctx.ScaffoldedMachines = make(map[string]string)
	ctx.Vars = make(map[string]string)
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
