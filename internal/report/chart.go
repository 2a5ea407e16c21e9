package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/aashto-classifier/internal/model"
)

const (
	chartFill  = "█"
	chartEmpty = "░"
)

// SieveChart renders percent passing for the three sieves as horizontal bars
// on a fixed 0-100 scale. Values outside the scale are clipped and non-finite
// values render as an empty bar.
func SieveChart(s model.Sample, width int) string {
	if width < 1 {
		width = 1
	}

	bars := []struct {
		label string
		value float64
	}{
		{"No.10 ", s.PassingNo10},
		{"No.40 ", s.PassingNo40},
		{"No.200", s.PassingNo200},
	}

	var b strings.Builder
	b.WriteString("Sieve Analysis Results (% passing)\n")
	for _, bar := range bars {
		filled := barCells(bar.value, width)
		fmt.Fprintf(&b, "%s │%s%s│ %5.1f%%\n",
			bar.label,
			strings.Repeat(chartFill, filled),
			strings.Repeat(chartEmpty, width-filled),
			bar.value)
	}
	return b.String()
}

func barCells(value float64, width int) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	filled := int(math.Round(clamp(value, 0, 100) / 100 * float64(width)))
	return min(max(filled, 0), width)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
