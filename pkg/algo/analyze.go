package algo

import (
	"fmt"
	"log/slog"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

// Analysis is the outcome of running the full pipeline over a map.
type Analysis struct {
	// Observer is the point that sees the most other points.
	Observer grid.Point
	// Visible is the number of points Observer can see.
	Visible int
	// Eliminated lists points in the order the sweep removed them.
	Eliminated []grid.Point
}

// Analyze selects the best observer on m and sweeps every other occupied cell from it,
// stopping after count eliminations (count <= 0 sweeps everything).
func Analyze(m *grid.Map, count int) (*Analysis, error) {
	observer, visible, err := SelectBestObserver(m.Occupied, m.Maxima)
	if err != nil {
		return nil, fmt.Errorf("failed to select observer: %w", err)
	}
	slog.Debug("Observer selected", "observer", observer.String(), "visible", visible, "points", m.Occupied.Len())

	order := SweepOrder(observer, m.Occupied.Without(observer), count)
	slog.Debug("Sweep finished", "eliminated", len(order), "target", count)

	return &Analysis{
		Observer:   observer,
		Visible:    visible,
		Eliminated: order,
	}, nil
}

// Nth returns the n-th eliminated point, counting from 1.
func (a *Analysis) Nth(n int) (grid.Point, bool) {
	if n < 1 || n > len(a.Eliminated) {
		return grid.Point{}, false
	}
	return a.Eliminated[n-1], true
}
