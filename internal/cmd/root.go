// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/expressgen/internal/config"
	"github.com/opmodel/expressgen/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	loadedConfig *config.Config
	configPath   config.ResolvedValue
)

// NewRootCmd creates the root command for expressgen.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "expressgen",
		Short: "Express application skeleton generator",
		Long: `expressgen creates the directory tree and starter files of a new
Express web application: an app.js entrypoint, a package.json manifest,
a router, two Pug views and an empty public/ asset tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: EXPRESSGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewManifestCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	resolved, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	configPath = resolved

	// A broken config file must not block commands like "config init".
	cfg, loadErr := config.NewLoader().Load(resolved.Value)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	loadedConfig = cfg

	// Timestamps: flag (if explicitly set) > config/env > default (nil = on)
	logCfg := output.LogConfig{Verbose: verboseFlag, Writer: cmd.ErrOrStderr()}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLogging(logCfg)
	config.LogResolvedValues(configPath)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", resolved.Value, "error", loadErr)
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if loadedConfig == nil {
		return config.DefaultConfig()
	}
	return loadedConfig
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	if configPath.Value != "" {
		return configPath.Value
	}
	return configFlag
}
