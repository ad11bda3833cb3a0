package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hydrobind/internal/config"
	"hydrobind/internal/logging"
	"hydrobind/internal/native"
)

var (
	// Global flags
	cfgPath  string
	logLevel string
	jsonLogs bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iwfm",
	Short: "hydrobind - IWFM engine binding and data access CLI",
	Long: `hydrobind drives the native IWFM hydrology engine through its
shared library interface.

It can download pre-built engine libraries from the open-data catalog,
probe a library for the entry points it exports, and export budget and
zone-budget results to CSV without running the engine's own post
processors.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.FromEnv()
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if jsonLogs {
			cfg.Logging.JSON = true
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.JSON)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadEngine opens the shared library at path, falling back to the
// configured library when path is empty.
func loadEngine(path string) (native.Engine, error) {
	if path == "" {
		path = cfg.Engine.LibraryPath
	}
	if path == "" {
		return nil, fmt.Errorf("no engine library given (set IWFM_LIBRARY or pass a path)")
	}
	return native.Load(path, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit structured json logs")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(zbudgetCmd)
	rootCmd.AddCommand(datesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
