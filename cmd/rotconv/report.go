package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"simdmath/internal/config"
	rotio "simdmath/io"
)

type printer struct {
	out       io.Writer
	format    string
	precision int
	degrees   bool
}

func newPrinter(out io.Writer, cfg config.Config) printer {
	return printer{out: out, format: cfg.Output, precision: cfg.Precision, degrees: cfg.Degrees}
}

func (p printer) print(results []rotio.RotationResult) error {
	switch p.format {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	default:
		var b strings.Builder
		for i, r := range results {
			if i > 0 {
				b.WriteByte('\n')
			}
			p.writeText(&b, r)
		}
		_, err := io.WriteString(p.out, b.String())
		return err
	}
}

func (p printer) writeText(b *strings.Builder, r rotio.RotationResult) {
	unit := "rad"
	if p.degrees {
		unit = "deg"
	}
	if r.Name != "" {
		fmt.Fprintf(b, "%s\n", r.Name)
	}
	fmt.Fprintf(b, "quaternion: %s\n", p.tuple(r.Quaternion[:]))
	fmt.Fprintf(b, "angle:      %s %s\n", p.float(r.Angle), unit)
	fmt.Fprintf(b, "axis:       %s\n", p.tuple(r.Axis[:]))
	for row := 0; row < 3; row++ {
		label := "matrix:"
		if row > 0 {
			label = ""
		}
		fmt.Fprintf(b, "%-11s %s\n", label, p.row(r.Matrix[row*3:row*3+3]))
	}
}

func (p printer) float(v float64) string {
	s := strconv.FormatFloat(v, 'f', p.precision, 64)
	// Print -0.000 as 0.000.
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

func (p printer) tuple(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = p.float(x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p printer) row(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = p.float(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
