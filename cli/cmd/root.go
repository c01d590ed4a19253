package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vagrantlab/vlab/cli/cmdcontext"
	"github.com/vagrantlab/vlab/cli/config"
	"github.com/vagrantlab/vlab/cli/configure"
	"github.com/vagrantlab/vlab/cli/scaffold"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/util"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command

	boxName         string
	dstPath         string
	interactiveMode bool
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vlab PROJECT_NAME [MACHINE_NAME]...",
		Short: "Vagrant lab scaffolding utility",
		Long: "Utility for scaffolding multi-machine Vagrant projects. " +
			"Scaffolds a project directory with a git repository, shared " +
			"provisioning and a directory per virtual machine.",
		Example: `$ vlab mylab web db
  $ vlab mylab web db --box ubuntu/jammy64
  $ vlab mylab node1 node2 node3 --dst /opt/labs`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				cmd.Help()
				return
			}
			cmdCtx.CommandName = cmd.Name()
			err := internalScaffoldModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cmdCtx.Cli.NoPrompt, "no-prompt",
		false, "Disable interactive prompts")

	rootCmd.Flags().StringVarP(&boxName, "box", "b", "",
		"Base box for the machines")
	rootCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created")
	rootCmd.Flags().BoolVarP(&interactiveMode, "interactive", "i", false,
		"Choose the base box interactively")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewTemplatesCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags, configures the CLI and loads
// the configuration file.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure vlab: %s", err)
	}

	var err error
	cliOpts, cmdCtx.Cli.ConfigPath, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get vlab configuration: %s", err)
	}
}

// internalScaffoldModule is a default scaffold module function.
func internalScaffoldModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{
		Box:            boxName,
		DestinationDir: dstPath,
		CliOpts:        cliOpts,
	}

	if interactiveMode && !cmdCtx.Cli.NoPrompt && boxName == "" &&
		isatty.IsTerminal(os.Stdout.Fd()) {
		chosenBox, err := chooseBox(cliOpts.Project.DefaultBox)
		if err != nil {
			return err
		}
		scaffoldCtx.Box = chosenBox
	}

	if err := scaffold.FillCtx(cliOpts, &scaffoldCtx, args); err != nil {
		return err
	}

	return scaffold.Run(&scaffoldCtx)
}
