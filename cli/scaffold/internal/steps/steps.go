// Package steps provides a set of handlers for scaffold command chain of responsibility.
package steps

import (
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// Step is an interface for a single step in scaffold chain.
type Step interface {
	Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error
}

// Template root names recognized in template search paths.
const (
	projectTemplateRoot = "project"
	commonTemplateRoot  = "common"
	machineTemplateRoot = "machine"
)

// reservedMachineName is scaffolded for every project and cannot be
// requested explicitly.
const reservedMachineName = "common"
