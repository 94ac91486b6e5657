package algo

import (
	"errors"
	"fmt"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

var (
	// ErrInvalidInput is returned when a point is asked to occlude itself.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyInput is returned when observer selection runs over no points.
	ErrEmptyInput = errors.New("empty input")
)

// Step reduces the vector from source to blocker to its minimal lattice step:
// the smallest integer vector with the same direction and signs.
// For an offset of (4, 6) the step is (2, 3).
func Step(source, blocker grid.Point) (grid.Point, error) {
	if source == blocker {
		return grid.Point{}, fmt.Errorf("source %v and blocker %v are on top of each other: %w", source, blocker, ErrInvalidInput)
	}

	return reduce(blocker.Sub(source)), nil
}

// reduce divides a non-zero offset by the gcd of its components.
func reduce(d grid.Point) grid.Point {
	switch {
	case d.Row == 0:
		return grid.Point{Row: 0, Col: sign(d.Col)}
	case d.Col == 0:
		return grid.Point{Row: sign(d.Row), Col: 0}
	}

	g := gcd(abs(d.Row), abs(d.Col))
	return grid.Point{Row: d.Row / g, Col: d.Col / g}
}

// OccludedPoints returns every cell hidden from source by blocker: the cells on
// the ray from source through blocker that lie beyond blocker and inside maxima.
// Occlusion is purely geometric; cells are returned whether occupied or not,
// ordered by increasing distance from blocker.
func OccludedPoints(source, blocker, maxima grid.Point) ([]grid.Point, error) {
	step, err := Step(source, blocker)
	if err != nil {
		return nil, err
	}

	var hidden []grid.Point
	for next := blocker.Add(step); next.Within(maxima); next = next.Add(step) {
		hidden = append(hidden, next)
	}
	return hidden, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
