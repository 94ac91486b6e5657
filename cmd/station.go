package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/laserwatch/laserwatch/internal/ui"
	"github.com/laserwatch/laserwatch/pkg/algo"
	"github.com/spf13/cobra"
)

// listVisible prints every asteroid the station can see.
var listVisible bool

// stationCmd represents the station command.
var stationCmd = &cobra.Command{
	Use:   "station [grid-file]",
	Short: "Find the asteroid that can see the most other asteroids",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStation(args, listVisible); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	stationCmd.Flags().BoolVarP(&listVisible, "list", "l", false, "List the visible asteroids")
	rootCmd.AddCommand(stationCmd)
}

// runStation reads a grid and reports the best monitoring station on it.
//
// Parameters:
//   - args: Optional grid file; standard input when empty or "-".
//   - list: Whether to print the visible asteroids as well.
//
// Returns:
//   - error: An error if the grid cannot be read or holds no asteroids.
func runStation(args []string, list bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := readGrid(args, cfg.OccupiedRune())
	if err != nil {
		return err
	}

	observer, visible, err := algo.SelectBestObserver(m.Occupied, m.Maxima)
	if err != nil {
		return fmt.Errorf("no station found: %w", err)
	}

	ui.PrintHeader("Monitoring station")
	ui.PrintField("Grid", fmt.Sprintf("%d x %d, %d asteroids", m.Maxima.Row, m.Maxima.Col, m.Occupied.Len()))
	ui.PrintSuccess("Station", observer.String())
	ui.PrintSuccess("Visible", strconv.Itoa(visible))

	if list {
		points, err := algo.VisiblePoints(observer, m.Maxima, m.Occupied.Without(observer))
		if err != nil {
			return err
		}
		ui.PrintHeader("Visible asteroids")
		for _, p := range points {
			bearing, err := algo.Bearing(observer, p)
			if err != nil {
				return err
			}
			ui.PrintField(p.String(), fmt.Sprintf("bearing %.4f rad", bearing))
		}
	}
	return nil
}
