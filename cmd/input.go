package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

// stdin is where grids are read from when no file (or "-") is given.
var stdin io.Reader = os.Stdin

// readGrid parses the grid named by args, or standard input when args is empty or "-".
func readGrid(args []string, occupied rune) (*grid.Map, error) {
	if len(args) == 0 || args[0] == "-" {
		m, err := grid.Parse(stdin, occupied)
		if err != nil {
			return nil, fmt.Errorf("failed to parse grid from stdin: %w", err)
		}
		return m, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open grid: %w", err)
	}
	defer f.Close()

	m, err := grid.Parse(f, occupied)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	return m, nil
}
