package cmd

import (
	"fmt"
	"os"

	"github.com/laserwatch/laserwatch/internal/config"
	"github.com/laserwatch/laserwatch/internal/report"
	"github.com/laserwatch/laserwatch/internal/ui"
	"github.com/spf13/cobra"
)

// vaporizeOptions holds command-line overrides; nil fields fall back to the config file.
type vaporizeOptions struct {
	Target *int
	Nth    *int
	Format string
}

var (
	vaporizeTarget int
	vaporizeNth    int
	vaporizeAll    bool
	vaporizeFormat string
)

// vaporizeCmd represents the vaporize command.
var vaporizeCmd = &cobra.Command{
	Use:   "vaporize [grid-file]",
	Short: "Simulate the rotating laser from the best station and report the elimination order",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts vaporizeOptions
		if cmd.Flags().Changed("target") {
			opts.Target = &vaporizeTarget
		}
		if vaporizeAll {
			all := 0
			opts.Target = &all
		}
		if cmd.Flags().Changed("nth") {
			opts.Nth = &vaporizeNth
		}
		opts.Format = vaporizeFormat

		if err := runVaporize(args, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	vaporizeCmd.Flags().IntVarP(&vaporizeTarget, "target", "t", 200, "Number of asteroids to vaporize (0 for all)")
	vaporizeCmd.Flags().IntVarP(&vaporizeNth, "nth", "n", 200, "Elimination to highlight, counting from 1 (0 to disable)")
	vaporizeCmd.Flags().BoolVar(&vaporizeAll, "all", false, "Vaporize every asteroid; same as --target 0")
	vaporizeCmd.Flags().StringVarP(&vaporizeFormat, "format", "f", "", "Output format: text, json or yaml (default from config)")
	rootCmd.AddCommand(vaporizeCmd)
}

// runVaporize reads a grid, runs the full analysis and writes the report to the console.
func runVaporize(args []string, opts vaporizeOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.Target != nil {
		cfg.Sweep.Target = opts.Target
	}
	if opts.Nth != nil {
		cfg.Sweep.ReportNth = opts.Nth
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	m, err := readGrid(args, cfg.OccupiedRune())
	if err != nil {
		return err
	}

	rep, err := report.Build(m, report.Options{
		Target: cfg.TargetCount(),
		Nth:    cfg.NthToReport(),
	})
	if err != nil {
		return err
	}
	return report.Write(ui.Out, rep, cfg.Output.Format)
}
