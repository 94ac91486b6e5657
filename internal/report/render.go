package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Write renders r to w in the given format: "text", "json" or "yaml".
// JSON output is checked against the report schema before it is written.
func Write(w io.Writer, r *Report, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return writeText(w, r)
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := ValidateJSON(data); err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// ContentType returns the MIME type matching a report format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	fmt.Fprintf(tw, "grid\t%d x %d, %d occupied\n", r.Grid.Rows, r.Grid.Cols, r.Grid.Occupied)
	fmt.Fprintf(tw, "observer\t(%d, %d)\n", r.Observer.Row, r.Observer.Col)
	fmt.Fprintf(tw, "visible\t%d\n", r.Visible)
	fmt.Fprintf(tw, "eliminated\t%d\n", len(r.Eliminated))
	if r.Nth != nil {
		fmt.Fprintf(tw, "elimination %d\t(%d, %d) checksum %d\n", r.Nth.N, r.Nth.Point.Row, r.Nth.Point.Col, r.Nth.Checksum)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, c := range r.Eliminated {
		if _, err := fmt.Fprintf(w, "%4d  (%d, %d)\n", i+1, c.Row, c.Col); err != nil {
			return err
		}
	}
	return nil
}
