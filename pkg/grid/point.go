package grid

import (
	"fmt"
	"sort"
)

// Point represents a single cell coordinate in a grid.
// Points are compared and hashed by value, so they can be used as map keys.
type Point struct {
	Row int
	Col int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Less orders points row-major: by Row, then Col.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Within reports whether p lies inside [0, maxima.Row) x [0, maxima.Col).
// maxima holds exclusive upper bounds, usually the grid's row and column counts.
func (p Point) Within(maxima Point) bool {
	return p.Row >= 0 && p.Row < maxima.Row && p.Col >= 0 && p.Col < maxima.Col
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// SortPoints sorts points in place in row-major order.
func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
}
