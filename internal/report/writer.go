package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/aashto-classifier/internal/cli"
	"github.com/Veraticus/aashto-classifier/internal/common"
	"gopkg.in/yaml.v3"
)

// Format selects a report rendering.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a configured format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Options controls the text rendering.
type Options struct {
	ChartWidth int
	ShowChart  bool
}

// Writer renders reports to an io.Writer.
type Writer struct {
	out    io.Writer
	format Format
	opts   Options
}

// NewWriter creates a writer for the given format.
func NewWriter(out io.Writer, format Format, opts Options) (*Writer, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = 40
	}
	return &Writer{out: out, format: format, opts: opts}, nil
}

// Write renders a single report.
func (w *Writer) Write(r *Report) error {
	switch w.format {
	case FormatJSON:
		return w.encodeJSON(r)
	case FormatYAML:
		return w.encodeYAML(r)
	default:
		_, err := io.WriteString(w.out, w.renderText(r))
		return err
	}
}

// WriteAll renders reports in order. Structured formats emit one document
// holding every report; text emits one box per report.
func (w *Writer) WriteAll(reports []*Report) error {
	switch w.format {
	case FormatJSON:
		return w.encodeJSON(reports)
	case FormatYAML:
		return w.encodeYAML(reports)
	default:
		for _, r := range reports {
			if _, err := io.WriteString(w.out, w.renderText(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

func (w *Writer) encodeJSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report as json: %w", err)
	}
	return nil
}

func (w *Writer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report as yaml: %w", err)
	}
	return enc.Close()
}

func (w *Writer) renderText(r *Report) string {
	res := r.Result
	s := res.Sample

	var b strings.Builder
	if s.Label != "" {
		fmt.Fprintf(&b, "Sample:         %s\n", s.Label)
	}
	fmt.Fprintf(&b, "Classification: %s\n", cli.FormatCode(res.Code))
	fmt.Fprintf(&b, "Material Type:  %s\n", res.MaterialType.Label())
	fmt.Fprintf(&b, "Constituents:   %s\n", res.Constituents)
	if res.Rule != "" {
		b.WriteString(cli.SubtleStyle.Render("Matched rule:   " + res.Rule))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.NonPlastic {
		fmt.Fprintf(&b, "LL %.1f  PL %.1f  PI N.P.\n", s.LiquidLimit, s.PlasticLimit)
	} else {
		fmt.Fprintf(&b, "LL %.1f  PL %.1f  PI %.1f\n", s.LiquidLimit, s.PlasticLimit, res.PlasticityIndex)
	}
	fmt.Fprintf(&b, "Passing No.10 %s  No.40 %s  No.200 %s\n\n",
		cli.FormatPercent(s.PassingNo10),
		cli.FormatPercent(s.PassingNo40),
		cli.FormatPercent(s.PassingNo200))

	b.WriteString(cli.BoldStyle.Render("Analysis"))
	b.WriteString("\n")
	b.WriteString(r.Explanation)
	b.WriteString("\n")

	if w.opts.ShowChart {
		b.WriteString("\n")
		b.WriteString(SieveChart(s, w.opts.ChartWidth))
	}

	for _, a := range r.Anomalies {
		b.WriteString("\n")
		b.WriteString(cli.FormatWarning(a))
	}

	return cli.RenderBox(cli.ReportIcon+" "+Title, strings.TrimRight(b.String(), "\n")) + "\n"
}
