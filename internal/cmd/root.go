// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/cmdutil"
	"github.com/helixkit/helix/internal/config"
	"github.com/helixkit/helix/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	helixConfig   *config.Config
	configLoader  *config.Loader
	configLoadErr error
)

// NewRootCmd creates the root command for the helix CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "helix",
		Short: "Helix solution scaffolder",
		Long: `helix adds Feature, Foundation and Project layer projects to a Helix
solution from templates, and registers them in the solution file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: HELIX_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewAddCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	helixConfig, configLoader, configLoadErr = nil, nil, nil

	loader := config.NewLoader()
	cfg, err := loader.Load(configFlag)
	if err != nil {
		// Commands that need the config report this themselves.
		configLoadErr = err
	} else {
		helixConfig, configLoader = cfg, loader
	}

	// Timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if helixConfig != nil && helixConfig.Log.Timestamps != nil {
		logCfg.Timestamps = helixConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if configLoadErr != nil {
		output.Debug("config load error", "error", configLoadErr)
	}
	if verboseFlag {
		output.Debug("initializing CLI", "config", GetConfigPath())
	}

	return nil
}

// GetConfig returns the loaded configuration, or nil if loading failed.
func GetConfig() *config.Config {
	return helixConfig
}

// GetConfigPath returns the config file path in effect:
// --config flag > HELIX_CONFIG > ~/.helix/config.yaml.
func GetConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	p, err := config.GetConfigFile()
	if err != nil {
		return ""
	}
	return p
}

// configView exposes the loaded configuration to value resolution.
func configView() cmdutil.ConfigView {
	if configLoader == nil {
		return cmdutil.ConfigView{Config: helixConfig}
	}
	return cmdutil.ConfigView{Config: helixConfig, InFile: configLoader.InFile}
}
