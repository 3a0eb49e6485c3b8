// Package report renders triangle measures for display.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/a-bouts/sphere-triangle/latlon"
	"github.com/a-bouts/sphere-triangle/triangle"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "yaml"}

// Report is what gets rendered: the vertices and their measures.
type Report struct {
	Vertices [3]latlon.LatLon `json:"vertices" yaml:"vertices"`
	Result   triangle.Result  `json:"result" yaml:"result"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(w, Text(r.Result))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport(r))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q, want one of %s", format, strings.Join(Formats, ", "))
}

func meters(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return humanize.FormatFloat("#,###.###", v)
}

// Text lays the measures out the way the calculator window shows them:
// meters with thousands separators and three decimals, degrees with eight.
func Text(r triangle.Result) string {
	var s strings.Builder

	s.WriteString("=== Results ===\n\n")
	s.WriteString("Sides (meters):\n")
	for i, name := range []string{"a", "b", "c"} {
		fmt.Fprintf(&s, " %s = %s m\n", name, meters(r.Sides[i]))
	}
	s.WriteString("\n")
	fmt.Fprintf(&s, "Perimeter = %s m  (~%s km)\n\n", meters(r.Perimeter), meters(r.PerimeterKm()))
	s.WriteString("Angles (degrees):\n")
	for i, name := range []string{"A", "B", "C"} {
		fmt.Fprintf(&s, " %s = %.8f°\n", name, r.Angles[i])
	}
	s.WriteString("\n")
	fmt.Fprintf(&s, "Area = %s m²  (~%s km²)\n", meters(r.Area), meters(r.AreaKm2()))

	return s.String()
}

// encoding/json refuses NaN and infinities, they are written as null.
type jsonResult struct {
	Sides     [3]*float64 `json:"sides_m"`
	Perimeter *float64    `json:"perimeter_m"`
	Angles    [3]*float64 `json:"angles_deg"`
	Area      *float64    `json:"area_m2"`
	ExcessRad *float64    `json:"excess_rad"`
	Fallback  bool        `json:"fallback"`
}

type jsonOutput struct {
	Vertices [3]latlon.LatLon `json:"vertices"`
	Result   jsonResult       `json:"result"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func jsonReport(r Report) jsonOutput {
	res := r.Result
	out := jsonOutput{
		Vertices: r.Vertices,
		Result: jsonResult{
			Perimeter: finite(res.Perimeter),
			Area:      finite(res.Area),
			ExcessRad: finite(res.ExcessRad),
			Fallback:  res.Fallback,
		},
	}
	for i := range res.Sides {
		out.Result.Sides[i] = finite(res.Sides[i])
		out.Result.Angles[i] = finite(res.Angles[i])
	}
	return out
}
