package algo

import (
	"math"
	"sort"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

// AllPoints passed as a sweep target keeps sweeping until no point is left.
const AllPoints = 0

// Bearing returns the clockwise angle from "up" (decreasing row) to the
// direction observer -> p, normalised into [0, 2π).
// It is computed on the reduced lattice step, so every point on one ray from
// observer has a bit-identical bearing. A point has no bearing from itself;
// that case returns ErrInvalidInput.
func Bearing(observer, p grid.Point) (float64, error) {
	step, err := Step(observer, p)
	if err != nil {
		return 0, err
	}
	return stepBearing(step), nil
}

func stepBearing(step grid.Point) float64 {
	angle := math.Atan2(float64(step.Col), float64(-step.Row))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b grid.Point) float64 {
	d := b.Sub(a)
	return math.Hypot(float64(d.Row), float64(d.Col))
}

type target struct {
	point   grid.Point
	bearing float64
	dist2   int
}

// sweepTargets orders points by ascending bearing, nearest first within a bearing.
func sweepTargets(observer grid.Point, points []grid.Point) []target {
	targets := make([]target, 0, len(points))
	seen := grid.NewSet()
	for _, p := range points {
		if p == observer || seen.Contains(p) {
			continue
		}
		seen.Add(p)
		d := p.Sub(observer)
		targets = append(targets, target{
			point:   p,
			bearing: stepBearing(reduce(d)),
			dist2:   d.Row*d.Row + d.Col*d.Col,
		})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].dist2 != targets[j].dist2 {
			return targets[i].dist2 < targets[j].dist2
		}
		return targets[i].point.Less(targets[j].point)
	})
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].bearing < targets[j].bearing
	})
	return targets
}

// SweepOrder simulates a laser rotating clockwise from "up" around observer and
// returns points in the order they are eliminated. Each revolution removes the
// nearest remaining point on every distinct bearing.
//
// The sweep stops once count points are removed or every point is gone;
// count <= 0 (AllPoints) sweeps until exhaustion. observer and duplicate
// entries in points are ignored.
func SweepOrder(observer grid.Point, points []grid.Point, count int) []grid.Point {
	targets := sweepTargets(observer, points)

	want := len(targets)
	if count > 0 && count < want {
		want = count
	}

	removed := make([]bool, len(targets))
	order := make([]grid.Point, 0, want)
	for len(order) < want {
		progressed := false
		lastBearing := math.NaN()
		for i, t := range targets {
			if removed[i] || t.bearing == lastBearing {
				continue
			}
			removed[i] = true
			order = append(order, t.point)
			lastBearing = t.bearing
			progressed = true
			if len(order) == want {
				break
			}
		}
		if !progressed {
			break
		}
	}
	return order
}
