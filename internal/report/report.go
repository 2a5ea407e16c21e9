// Package report assembles classification reports and renders them for output.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/google/uuid"
)

// Report is a classification together with its explanation.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Explanation string       `json:"explanation" yaml:"explanation"`
	Anomalies   []string     `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
	Result      model.Result `json:"result" yaml:"result"`
	ID          uuid.UUID    `json:"id" yaml:"id"`
}

// New creates a report for result stamped with the current time.
func New(result model.Result, explanation string) *Report {
	return &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Result:      result,
		Explanation: explanation,
		Anomalies:   result.Sample.Anomalies(),
	}
}

// Title is the heading used by every rendering.
const Title = "AASHTO Soil Classification Report"

// Filename returns the download name for the report, e.g. soil_report_A-2-4.json.
func (r *Report) Filename(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	name := "soil_report_" + r.Result.Code.String()
	if ext == "" {
		return name
	}
	return fmt.Sprintf("%s.%s", name, ext)
}
