package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/vagrantlab/vlab/cli/cmdcontext"
	"github.com/vagrantlab/vlab/cli/config"
	"github.com/vagrantlab/vlab/cli/util"
)

const (
	ConfigName = "vlab.yaml"
	// configHomeEnvName is an environment variable that contains a path to
	// search the user-level config in.
	configHomeEnvName = "XDG_CONFIG_HOME"
	// userConfigDirName is a vlab subdirectory name inside the user
	// configuration directory.
	userConfigDirName = "vlab"
)

const (
	// DefaultBox is the Vagrant box used when neither the command line
	// nor the configuration file names one.
	DefaultBox = "debian/bookworm64"
	// DefaultInitialBranch is the initial branch name for new project
	// repositories.
	DefaultInitialBranch = "main"
	// TemplatesPath is a default machine templates directory name.
	TemplatesPath = "templates"
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	project := config.ProjectOpts{
		DefaultBox:    DefaultBox,
		InitialBranch: DefaultInitialBranch,
	}
	templates := []config.TemplateOpts{
		{Path: TemplatesPath},
	}
	return &config.CliOpts{
		Project:   &project,
		Templates: templates,
	}
}

// adjustPathWithConfigLocation resolves filePath relative to configDir.
// Empty filePath is resolved to defaultDirName.
func adjustPathWithConfigLocation(filePath, configDir string,
	defaultDirName string,
) (string, error) {
	if filePath == "" {
		if defaultDirName == "" {
			return "", nil
		}
		return filepath.Abs(filepath.Join(configDir, defaultDirName))
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves all paths in config relative to specified location, and
// sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error

	if cliOpts.Project == nil {
		cliOpts.Project = GetDefaultCliOpts().Project
	}
	if cliOpts.Project.DefaultBox == "" {
		cliOpts.Project.DefaultBox = DefaultBox
	}
	if cliOpts.Project.InitialBranch == "" {
		cliOpts.Project.InitialBranch = DefaultInitialBranch
	}

	for i := range cliOpts.Templates {
		if cliOpts.Templates[i].Path, err = adjustPathWithConfigLocation(
			cliOpts.Templates[i].Path, configDir, TemplatesPath); err != nil {
			return err
		}
	}

	return nil
}

func decodeConfig(input map[string]any, cfg *config.CliOpts) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result: &config.Config{CliConfig: cfg},
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns vlab options from the config file
// located at path configurePath.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := GetDefaultCliOpts()
	configPath, err := util.GetYamlFileName(configurePath, true)
	if err == nil {
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
		}
		// Config file is found, load it.
		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse vlab configuration: %s", err)
		}
		if _, ok := rawConfigOpts["vlab"]; !ok {
			return nil, "", fmt.Errorf("failed to parse vlab configuration: missing vlab section")
		}
		if err := decodeConfig(rawConfigOpts, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse vlab configuration: %s", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, "", fmt.Errorf("failed to get access to configuration file: %s", err)
	} else {
		configPath = ""
	}

	configDir := ""
	if configPath == "" {
		if configDir, err = os.Getwd(); err != nil {
			return cfg, configPath, err
		}
	} else {
		if configDir, err = filepath.Abs(filepath.Dir(configPath)); err != nil {
			return cfg, configPath, err
		}
	}

	if err = updateCliOpts(cfg, configDir); err != nil {
		return cfg, "", err
	}

	return cfg, configPath, nil
}

// Cli performs initial CLI configuration: applies the verbosity level and
// locates the configuration file.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
		var err error
		if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("failed to get configuration file path: %s", err)
		}
	} else {
		var err error
		if cmdCtx.Cli.ConfigPath, err = getConfigPath(ConfigName); err != nil {
			return fmt.Errorf("failed to get vlab config: %s", err)
		}
		if cmdCtx.Cli.ConfigPath == "" {
			cmdCtx.Cli.ConfigPath = getUserConfigPath(ConfigName)
		}
	}

	if cmdCtx.Cli.ConfigPath != "" {
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
	} else {
		var err error
		if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to detect current directory: %s", err)
		}
	}

	return nil
}

// getConfigPath looks for the path to the vlab.yaml configuration file,
// looking through all directories from the current one to the root.
// This search pattern is chosen for the convenience of the user.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for curDir != "/" {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		curDir = filepath.Dir(curDir)
	}

	return "", nil
}

// getUserConfigPath looks for the configuration file in the user
// configuration directory: $XDG_CONFIG_HOME/vlab (if $XDG_CONFIG_HOME is
// not set, uses $HOME/.config/vlab). Returns an empty string if there is
// no configuration file there.
func getUserConfigPath(configName string) string {
	var userConfigDir string
	xdgConfigHome := os.Getenv(configHomeEnvName)
	homeDir := os.Getenv("HOME")

	if xdgConfigHome != "" {
		userConfigDir = fmt.Sprintf("%s/%s", xdgConfigHome, userConfigDirName)
	} else {
		userConfigDir = fmt.Sprintf("%s/.config/%s", homeDir, userConfigDirName)
	}

	configPath := fmt.Sprintf("%s/%s", userConfigDir, configName)
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}
