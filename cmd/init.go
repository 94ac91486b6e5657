package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/laserwatch/laserwatch/internal/config"
	"github.com/laserwatch/laserwatch/internal/templates"
	"github.com/laserwatch/laserwatch/internal/ui"
	"github.com/laserwatch/laserwatch/pkg/grid"
	"github.com/spf13/cobra"
)

var forceInit bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default laserwatch.yaml",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(configPath, forceInit); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config without asking")
	rootCmd.AddCommand(initCmd)
}

// runInit writes the default configuration to path.
// An existing file is only replaced with force or after confirmation.
//
// Parameters:
//   - path: Destination of the configuration file.
//   - force: Overwrite without prompting.
//
// Returns:
//   - error: An error if the file cannot be written.
func runInit(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		if !ui.Confirm(fmt.Sprintf("%s already exists. Overwrite", path)) {
			ui.PrintWarning("Skipped", path)
			return nil
		}
	}

	data, err := templates.Render("laserwatch.yaml.tmpl", struct {
		Occupied  string
		Target    int
		ReportNth int
		Format    string
		Addr      string
	}{
		Occupied:  string(grid.DefaultOccupied),
		Target:    config.DefaultTarget,
		ReportNth: config.DefaultTarget,
		Format:    "text",
		Addr:      ":8080",
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	ui.PrintSuccess("Created", path)
	return nil
}
