package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultOccupied is the character that marks an occupied cell.
const DefaultOccupied = '#'

var (
	// ErrEmptyGrid is returned when the input holds no rows.
	ErrEmptyGrid = errors.New("grid has no rows")
	// ErrRaggedGrid is returned when rows differ in width.
	ErrRaggedGrid = errors.New("grid rows differ in width")
	// ErrInvalidMarker is returned when the occupied marker is not a valid rune.
	ErrInvalidMarker = errors.New("invalid occupied marker")
)

// Map is a parsed grid: its bounds and the set of occupied cells.
type Map struct {
	// Maxima holds the row count and column count; both are exclusive bounds.
	Maxima Point
	// Occupied holds every occupied cell. All members lie within Maxima.
	Occupied Set
}

// Parse reads a textual grid, one character per cell, one row per line.
// Cells equal to occupied are collected into the map; every other character is empty space.
// Trailing whitespace on each line and trailing blank lines are ignored, except
// that a whitespace marker keeps every cell and only a trailing "\r" is dropped.
func Parse(r io.Reader, occupied rune) (*Map, error) {
	if occupied == utf8.RuneError || !utf8.ValidRune(occupied) {
		return nil, fmt.Errorf("%q: %w", occupied, ErrInvalidMarker)
	}
	cutset := " \t\r"
	if unicode.IsSpace(occupied) {
		cutset = "\r"
	}

	var rows [][]rune

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, []rune(strings.TrimRight(scanner.Text(), cutset)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	m := &Map{
		Maxima:   Point{Row: len(rows), Col: width},
		Occupied: NewSet(),
	}
	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", row, len(line), width, ErrRaggedGrid)
		}
		for col, c := range line {
			if c == occupied {
				m.Occupied.Add(Point{Row: row, Col: col})
			}
		}
	}
	return m, nil
}

// ParseString is a convenience wrapper around Parse for in-memory grids.
func ParseString(s string, occupied rune) (*Map, error) {
	return Parse(strings.NewReader(s), occupied)
}
