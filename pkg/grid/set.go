package grid

// Set is an unordered collection of distinct points.
// The zero value is not usable; create sets with NewSet.
type Set struct {
	m map[Point]struct{}
}

// NewSet returns a set holding the given points. Duplicates collapse.
func NewSet(points ...Point) Set {
	s := Set{m: make(map[Point]struct{}, len(points))}
	for _, p := range points {
		s.m[p] = struct{}{}
	}
	return s
}

// Add inserts p; adding a member again is a no-op.
func (s Set) Add(p Point) {
	s.m[p] = struct{}{}
}

// Contains reports whether p is a member.
func (s Set) Contains(p Point) bool {
	_, ok := s.m[p]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.m)
}

// Sorted returns the members in row-major order.
func (s Set) Sorted() []Point {
	points := make([]Point, 0, len(s.m))
	for p := range s.m {
		points = append(points, p)
	}
	SortPoints(points)
	return points
}

// Without returns the members other than p, in row-major order.
func (s Set) Without(p Point) []Point {
	points := make([]Point, 0, len(s.m))
	for _, q := range s.Sorted() {
		if q != p {
			points = append(points, q)
		}
	}
	return points
}
