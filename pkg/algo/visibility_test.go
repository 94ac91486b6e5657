package algo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

func TestVisibleCountCollinear(t *testing.T) {
	maxima := grid.Point{Row: 1, Col: 3}
	tests := []struct {
		name     string
		observer grid.Point
		others   []grid.Point
		want     int
	}{
		{"Middle Sees Both", grid.Point{Row: 0, Col: 1}, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, 2},
		{"End Is Blocked", grid.Point{Row: 0, Col: 0}, []grid.Point{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, 1},
		{"Other End Is Blocked", grid.Point{Row: 0, Col: 2}, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VisibleCount(tt.observer, maxima, tt.others)
			if err != nil {
				t.Fatalf("VisibleCount() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("VisibleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVisibleCountSmallField(t *testing.T) {
	m := mustParse(t, smallField)
	want := map[grid.Point]int{
		{Row: 0, Col: 1}: 7, {Row: 0, Col: 4}: 7,
		{Row: 2, Col: 0}: 6, {Row: 2, Col: 1}: 7, {Row: 2, Col: 2}: 7, {Row: 2, Col: 3}: 7, {Row: 2, Col: 4}: 5,
		{Row: 3, Col: 4}: 7,
		{Row: 4, Col: 3}: 8, {Row: 4, Col: 4}: 7,
	}

	for _, p := range m.Occupied.Sorted() {
		got, err := VisibleCount(p, m.Maxima, m.Occupied.Without(p))
		if err != nil {
			t.Fatalf("VisibleCount(%v) unexpected error: %v", p, err)
		}
		if got != want[p] {
			t.Errorf("VisibleCount(%v) = %d, want %d", p, got, want[p])
		}
	}
}

func TestVisibleCountNoCollinearPoints(t *testing.T) {
	// No two of these share a lattice ray with the observer or each other.
	observer := grid.Point{Row: 0, Col: 0}
	others := []grid.Point{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 3, Col: 5}}
	got, err := VisibleCount(observer, grid.Point{Row: 6, Col: 6}, others)
	if err != nil {
		t.Fatalf("VisibleCount() unexpected error: %v", err)
	}
	if got != len(others) {
		t.Errorf("VisibleCount() = %d, want %d", got, len(others))
	}
}

func TestVisiblePointsExcludesOccluded(t *testing.T) {
	m := mustParse(t, mediumField)
	observer := grid.Point{Row: 8, Col: 5}
	others := m.Occupied.Without(observer)

	visible, err := VisiblePoints(observer, m.Maxima, others)
	if err != nil {
		t.Fatalf("VisiblePoints() unexpected error: %v", err)
	}
	if len(visible) > len(others) {
		t.Fatalf("VisiblePoints() returned %d of %d points", len(visible), len(others))
	}

	seen := grid.NewSet(visible...)
	for _, blocker := range others {
		hidden, err := OccludedPoints(observer, blocker, m.Maxima)
		if err != nil {
			t.Fatalf("OccludedPoints() unexpected error: %v", err)
		}
		for _, h := range hidden {
			if seen.Contains(h) {
				t.Errorf("%v is hidden by %v but reported visible", h, blocker)
			}
		}
	}
}

func TestVisiblePointsRejectsObserverInOthers(t *testing.T) {
	observer := grid.Point{Row: 1, Col: 1}
	_, err := VisiblePoints(observer, grid.Point{Row: 3, Col: 3}, []grid.Point{{Row: 0, Col: 0}, observer})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("VisiblePoints() error = %v, want ErrInvalidInput", err)
	}
}

func TestSelectBestObserver(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		wantPoint grid.Point
		wantCount int
	}{
		{"Small", smallField, grid.Point{Row: 4, Col: 3}, 8},
		{"Medium", mediumField, grid.Point{Row: 8, Col: 5}, 33},
		{"Large", largeField, grid.Point{Row: 13, Col: 11}, 210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustParse(t, tt.field)
			got, count, err := SelectBestObserver(m.Occupied, m.Maxima)
			if err != nil {
				t.Fatalf("SelectBestObserver() unexpected error: %v", err)
			}
			if got != tt.wantPoint || count != tt.wantCount {
				t.Errorf("SelectBestObserver() = %v, %d, want %v, %d", got, count, tt.wantPoint, tt.wantCount)
			}
		})
	}
}

func TestSelectBestObserverCollinearTie(t *testing.T) {
	points := grid.NewSet(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 1}, grid.Point{Row: 0, Col: 2})
	got, count, err := SelectBestObserver(points, grid.Point{Row: 1, Col: 3})
	if err != nil {
		t.Fatalf("SelectBestObserver() unexpected error: %v", err)
	}
	if got != (grid.Point{Row: 0, Col: 1}) || count != 2 {
		t.Errorf("SelectBestObserver() = %v, %d, want (0, 1), 2", got, count)
	}
}

func TestSelectBestObserverTieBreak(t *testing.T) {
	// Two points see each other; the first in row-major order wins.
	points := grid.NewSet(grid.Point{Row: 3, Col: 3}, grid.Point{Row: 1, Col: 2})
	got, count, err := SelectBestObserver(points, grid.Point{Row: 5, Col: 5})
	if err != nil {
		t.Fatalf("SelectBestObserver() unexpected error: %v", err)
	}
	if got != (grid.Point{Row: 1, Col: 2}) || count != 1 {
		t.Errorf("SelectBestObserver() = %v, %d, want (1, 2), 1", got, count)
	}
}

func TestSelectBestObserverEmpty(t *testing.T) {
	_, _, err := SelectBestObserver(grid.NewSet(), grid.Point{Row: 3, Col: 3})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("SelectBestObserver() error = %v, want ErrEmptyInput", err)
	}
}

func TestVisiblePointsOrder(t *testing.T) {
	others := []grid.Point{{Row: 2, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	got, err := VisiblePoints(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 3, Col: 3}, others)
	if err != nil {
		t.Fatalf("VisiblePoints() unexpected error: %v", err)
	}
	want := []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("VisiblePoints() = %v, want %v", got, want)
	}
}
