package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/vagrantlab/vlab/cli/cmdcontext"
	"github.com/vagrantlab/vlab/cli/scaffold/builtin_templates"
	"github.com/vagrantlab/vlab/cli/util"
)

// builtinSourceName marks a template root with no override directory.
const builtinSourceName = "builtin"

var prettyTemplatesList bool

// NewTemplatesCmd creates a new templates command.
func NewTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Show the template roots and where they are taken from",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalTemplatesModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	templatesCmd.Flags().BoolVarP(&prettyTemplatesList, "pretty", "p", false,
		"Pretty-formatted table output")

	return templatesCmd
}

// templateRootSource returns the directory the named template root is taken
// from, or builtinSourceName if no configured search path overrides it.
func templateRootSource(searchPaths []string, rootName string) string {
	for _, searchPath := range searchPaths {
		rootDir := filepath.Join(searchPath, rootName)
		if util.IsDir(rootDir) {
			return rootDir
		}
	}
	return builtinSourceName
}

// internalTemplatesModule is a default templates module function.
func internalTemplatesModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	searchPaths := []string{}
	for _, templateOpts := range cliOpts.Templates {
		searchPaths = append(searchPaths, templateOpts.Path)
	}

	printBuiltin := color.New(color.FgCyan).SprintFunc()

	ts := table.NewWriter()
	ts.SetOutputMirror(os.Stdout)
	ts.AppendHeader(table.Row{"TEMPLATE", "SOURCE"})
	for _, rootName := range builtin_templates.Names {
		source := templateRootSource(searchPaths, rootName)
		if source == builtinSourceName {
			source = printBuiltin(source)
		}
		ts.AppendRow(table.Row{rootName, source})
	}

	if prettyTemplatesList {
		ts.SetStyle(table.StyleRounded)
	} else {
		ts.Style().Options.DrawBorder = false
		ts.Style().Options.SeparateColumns = false
		ts.Style().Options.SeparateHeader = false
	}
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	ts.Render()

	return nil
}
