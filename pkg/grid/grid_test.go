package grid

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxima   Point
		occupied []Point
		wantErr  error
	}{
		{
			name:     "Single Row",
			input:    ".#.#",
			maxima:   Point{Row: 1, Col: 4},
			occupied: []Point{{Row: 0, Col: 1}, {Row: 0, Col: 3}},
		},
		{
			name:   "Block With Trailing Newlines",
			input:  ".#..#\n.....\n#####\n....#\n...##\n\n\n",
			maxima: Point{Row: 5, Col: 5},
			occupied: []Point{
				{Row: 0, Col: 1}, {Row: 0, Col: 4},
				{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4},
				{Row: 3, Col: 4},
				{Row: 4, Col: 3}, {Row: 4, Col: 4},
			},
		},
		{
			name:     "Windows Line Endings",
			input:    "#.\r\n.#\r\n",
			maxima:   Point{Row: 2, Col: 2},
			occupied: []Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		},
		{
			name:     "No Occupied Cells",
			input:    "...\n...",
			maxima:   Point{Row: 2, Col: 3},
			occupied: []Point{},
		},
		{
			name:    "Empty Input",
			input:   "\n\n",
			wantErr: ErrEmptyGrid,
		},
		{
			name:    "Ragged Rows",
			input:   "###\n##\n",
			wantErr: ErrRaggedGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseString(tt.input, DefaultOccupied)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if m.Maxima != tt.maxima {
				t.Errorf("Parse() maxima = %v, want %v", m.Maxima, tt.maxima)
			}
			if got := m.Occupied.Sorted(); !reflect.DeepEqual(got, tt.occupied) {
				t.Errorf("Parse() occupied = %v, want %v", got, tt.occupied)
			}
			for _, p := range m.Occupied.Sorted() {
				if !p.Within(m.Maxima) {
					t.Errorf("occupied point %v outside maxima %v", p, m.Maxima)
				}
			}
		})
	}
}

func TestParseCustomMarker(t *testing.T) {
	m, err := ParseString("o.\n.o", 'o')
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if m.Occupied.Len() != 2 {
		t.Errorf("Occupied.Len() = %d, want 2", m.Occupied.Len())
	}
}

func TestParseMarkers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		marker   rune
		maxima   Point
		occupied []Point
		wantErr  error
	}{
		{
			name:     "Trailing Whitespace Trimmed",
			input:    "#. \t\n.#\t\n",
			marker:   DefaultOccupied,
			maxima:   Point{Row: 2, Col: 2},
			occupied: []Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		},
		{
			name:     "Space Marker Keeps Last Column",
			input:    ". . \n. . \n",
			marker:   ' ',
			maxima:   Point{Row: 2, Col: 4},
			occupied: []Point{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 1, Col: 1}, {Row: 1, Col: 3}},
		},
		{
			name:     "Tab Marker With CRLF",
			input:    ".\t\r\n\t.\r\n",
			marker:   '\t',
			maxima:   Point{Row: 2, Col: 2},
			occupied: []Point{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
		},
		{
			name:    "Replacement Rune Marker",
			input:   "#\xff\n",
			marker:  '\uFFFD',
			wantErr: ErrInvalidMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseString(tt.input, tt.marker)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if m.Maxima != tt.maxima {
				t.Errorf("Parse() maxima = %v, want %v", m.Maxima, tt.maxima)
			}
			if got := m.Occupied.Sorted(); !reflect.DeepEqual(got, tt.occupied) {
				t.Errorf("Parse() occupied = %v, want %v", got, tt.occupied)
			}
		})
	}
}

func TestPointWithin(t *testing.T) {
	maxima := Point{Row: 3, Col: 2}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{2, 1}, true},
		{Point{3, 1}, false},
		{Point{2, 2}, false},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Within(maxima); got != tt.want {
			t.Errorf("%v.Within(%v) = %v, want %v", tt.p, maxima, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Point{1, 1}, Point{0, 2}, Point{1, 1}, Point{0, 0})
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !s.Contains(Point{0, 2}) || s.Contains(Point{2, 2}) {
		t.Errorf("Contains() mismatch")
	}

	want := []Point{{0, 0}, {0, 2}, {1, 1}}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}

	want = []Point{{0, 0}, {1, 1}}
	if got := s.Without(Point{0, 2}); !reflect.DeepEqual(got, want) {
		t.Errorf("Without() = %v, want %v", got, want)
	}
}
