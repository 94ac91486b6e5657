package cmd

import (
	"fmt"
	"os"

	"github.com/laserwatch/laserwatch/internal/config"
	"github.com/laserwatch/laserwatch/internal/ui"
	"github.com/laserwatch/laserwatch/pkg/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "laserwatch",
	Short: "Find the best monitoring station on an asteroid grid and plan its laser sweep",
	Long: `laserwatch reads a grid of asteroids, finds the asteroid that can see the most
others along exact lattice lines of sight, and simulates a rotating laser that
vaporizes the others one per direction per revolution.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path; overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// loadConfig reads the configuration file, applies command-line overrides and
// initialises logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.Path = logFile
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("failed to initialise logging: %w", err)
	}
	if noColor {
		ui.DisableColor()
	}
	return cfg, nil
}
