package builtin_templates

import (
	"embed"

	"github.com/vagrantlab/vlab/cli/scaffold/builtin_templates/static"
)

//go:embed all:templates/*
var TemplatesFs embed.FS

// FileModes contains mapping of file modes by built-in template root name.
var FileModes = map[string]map[string]int{
	"project": static.ProjectFileModes,
	"common":  static.CommonFileModes,
	"machine": static.MachineFileModes,
}

// Names contains built-in template root names.
var Names = [...]string{"project", "common", "machine"}
