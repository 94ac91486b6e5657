// Package report assembles analysis results into reports and renders them.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/laserwatch/laserwatch/pkg/algo"
	"github.com/laserwatch/laserwatch/pkg/grid"
)

// Coord is a grid point as it appears in rendered reports.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func coordOf(p grid.Point) Coord {
	return Coord{Row: p.Row, Col: p.Col}
}

// GridInfo summarises the analysed grid.
type GridInfo struct {
	Rows     int `json:"rows" yaml:"rows"`
	Cols     int `json:"cols" yaml:"cols"`
	Occupied int `json:"occupied" yaml:"occupied"`
}

// NthResult highlights a single elimination.
type NthResult struct {
	// N counts from 1.
	N     int   `json:"n" yaml:"n"`
	Point Coord `json:"point" yaml:"point"`
	// Checksum is col*100 + row.
	Checksum int `json:"checksum" yaml:"checksum"`
}

// Report is the rendered outcome of one analysis run.
type Report struct {
	RunID       string     `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time  `json:"generated_at" yaml:"generated_at"`
	Grid        GridInfo   `json:"grid" yaml:"grid"`
	Observer    Coord      `json:"observer" yaml:"observer"`
	Visible     int        `json:"visible" yaml:"visible"`
	Target      int        `json:"target" yaml:"target"`
	Eliminated  []Coord    `json:"eliminated" yaml:"eliminated"`
	Nth         *NthResult `json:"nth,omitempty" yaml:"nth,omitempty"`
}

// Options controls what Build runs and highlights.
type Options struct {
	// Target is the sweep target; 0 sweeps every point.
	Target int
	// Nth is the elimination to highlight; 0 or an elimination that never happens omits it.
	Nth int
}

// Build analyses m and assembles a report stamped with a fresh run ID.
func Build(m *grid.Map, opts Options) (*Report, error) {
	analysis, err := algo.Analyze(m, opts.Target)
	if err != nil {
		return nil, err
	}
	return FromAnalysis(m, analysis, opts), nil
}

// FromAnalysis wraps an existing analysis in a report.
func FromAnalysis(m *grid.Map, a *algo.Analysis, opts Options) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Grid: GridInfo{
			Rows:     m.Maxima.Row,
			Cols:     m.Maxima.Col,
			Occupied: m.Occupied.Len(),
		},
		Observer:   coordOf(a.Observer),
		Visible:    a.Visible,
		Target:     opts.Target,
		Eliminated: make([]Coord, 0, len(a.Eliminated)),
	}
	for _, p := range a.Eliminated {
		r.Eliminated = append(r.Eliminated, coordOf(p))
	}
	if p, ok := a.Nth(opts.Nth); ok {
		r.Nth = &NthResult{
			N:        opts.Nth,
			Point:    coordOf(p),
			Checksum: p.Col*100 + p.Row,
		}
	}
	return r
}
