package algo

import (
	"fmt"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

// blockedFrom unions the occlusion sets of every point in others as seen from observer.
func blockedFrom(observer, maxima grid.Point, others []grid.Point) (grid.Set, error) {
	blocked := grid.NewSet()
	for _, other := range others {
		hidden, err := OccludedPoints(observer, other, maxima)
		if err != nil {
			return grid.Set{}, err
		}
		for _, p := range hidden {
			blocked.Add(p)
		}
	}
	return blocked, nil
}

// VisiblePoints returns the members of others that no other member hides from observer,
// in the order they appear in others.
// others must not contain observer; if it does, the occlusion error is returned.
func VisiblePoints(observer, maxima grid.Point, others []grid.Point) ([]grid.Point, error) {
	blocked, err := blockedFrom(observer, maxima, others)
	if err != nil {
		return nil, fmt.Errorf("visibility from %v: %w", observer, err)
	}

	visible := make([]grid.Point, 0, len(others))
	for _, p := range others {
		if !blocked.Contains(p) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// VisibleCount returns how many members of others are visible from observer.
func VisibleCount(observer, maxima grid.Point, others []grid.Point) (int, error) {
	visible, err := VisiblePoints(observer, maxima, others)
	if err != nil {
		return 0, err
	}
	return len(visible), nil
}

// SelectBestObserver scans points in row-major order and returns the one that
// sees the most other points, along with that count.
// Ties go to the first point in row-major order.
func SelectBestObserver(points grid.Set, maxima grid.Point) (grid.Point, int, error) {
	if points.Len() == 0 {
		return grid.Point{}, 0, ErrEmptyInput
	}

	var best grid.Point
	bestCount := -1
	for _, p := range points.Sorted() {
		count, err := VisibleCount(p, maxima, points.Without(p))
		if err != nil {
			return grid.Point{}, 0, err
		}
		if count > bestCount {
			best, bestCount = p, count
		}
	}
	return best, bestCount, nil
}
