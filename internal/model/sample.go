package model

import (
	"fmt"
	"math"
)

// Sample holds the laboratory measurements for one soil specimen.
// Percentages are cumulative percent passing by mass.
type Sample struct {
	ID           string  `json:"id,omitempty" yaml:"id,omitempty"`
	Label        string  `json:"label,omitempty" yaml:"label,omitempty"`
	LiquidLimit  float64 `json:"liquid_limit" yaml:"liquid_limit"`
	PlasticLimit float64 `json:"plastic_limit" yaml:"plastic_limit"`
	PassingNo10  float64 `json:"passing_no10" yaml:"passing_no10"`
	PassingNo40  float64 `json:"passing_no40" yaml:"passing_no40"`
	PassingNo200 float64 `json:"passing_no200" yaml:"passing_no200"`
	NonPlastic   bool    `json:"non_plastic" yaml:"non_plastic"`
}

// PlasticityIndex returns LL - PL clamped at zero, or zero for a non-plastic sample.
func (s Sample) PlasticityIndex() float64 {
	if s.NonPlastic {
		return 0
	}
	pi := s.LiquidLimit - s.PlasticLimit
	if pi < 0 {
		return 0
	}
	return pi
}

// Anomalies reports measurements that fall outside laboratory convention.
// The classifier accepts them as given; callers decide whether to warn.
func (s Sample) Anomalies() []string {
	var out []string

	percents := []struct {
		name  string
		value float64
	}{
		{"liquid limit", s.LiquidLimit},
		{"plastic limit", s.PlasticLimit},
		{"No.10 passing", s.PassingNo10},
		{"No.40 passing", s.PassingNo40},
		{"No.200 passing", s.PassingNo200},
	}
	for _, p := range percents {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			out = append(out, fmt.Sprintf("%s %v is not a finite number", p.name, p.value))
			continue
		}
		if p.value < 0 || p.value > 100 {
			out = append(out, fmt.Sprintf("%s %.1f%% is outside 0-100", p.name, p.value))
		}
	}

	if s.PassingNo40 > s.PassingNo10 {
		out = append(out, fmt.Sprintf("No.40 passing %.1f%% exceeds No.10 passing %.1f%%", s.PassingNo40, s.PassingNo10))
	}
	if s.PassingNo200 > s.PassingNo40 {
		out = append(out, fmt.Sprintf("No.200 passing %.1f%% exceeds No.40 passing %.1f%%", s.PassingNo200, s.PassingNo40))
	}
	if !s.NonPlastic && s.PlasticLimit > s.LiquidLimit {
		out = append(out, fmt.Sprintf("plastic limit %.1f exceeds liquid limit %.1f; plasticity index clamped to 0", s.PlasticLimit, s.LiquidLimit))
	}

	return out
}
