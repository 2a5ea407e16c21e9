package insight

import (
	"context"
	"fmt"

	"github.com/Veraticus/aashto-classifier/internal/model"
)

// StaticExplainer answers from a fixed table of descriptions.
type StaticExplainer struct {
	descriptions map[model.Code]string
}

// NewStaticExplainer creates an explainer over the given descriptions.
// A nil map uses DefaultDescriptions.
func NewStaticExplainer(descriptions map[model.Code]string) *StaticExplainer {
	if descriptions == nil {
		descriptions = DefaultDescriptions()
	}
	return &StaticExplainer{descriptions: descriptions}
}

// Explain returns the stored description for code.
func (e *StaticExplainer) Explain(_ context.Context, code model.Code, _ string) (string, error) {
	text, ok := e.descriptions[code]
	if !ok {
		return "", fmt.Errorf("no description for %s", code)
	}
	return text, nil
}

// DefaultDescriptions returns stock engineering descriptions for each group.
func DefaultDescriptions() map[model.Code]string {
	return map[model.Code]string{
		model.CodeA1a: "Well-graded stone fragments and gravel with little or no fine binder. " +
			"Excellent to good subgrade; suitable for base and subbase courses.",
		model.CodeA1b: "Predominantly coarse sand with or without a well-graded binder. " +
			"Excellent to good subgrade; suitable for subbase and embankments.",
		model.CodeA3: "Non-plastic fine sand, such as beach or desert sand, with little silt. " +
			"Good subgrade when confined; poor stability when loose.",
		model.CodeA24: "Gravel and sand with non-plastic to low-plasticity silty fines. " +
			"Good subgrade; sensitive to moisture when fines approach 35%.",
		model.CodeA25: "Gravel and sand with elastic silty fines of high liquid limit. " +
			"Good to fair subgrade; fines may reduce drainage.",
		model.CodeA26: "Gravel and sand with plastic clayey fines. " +
			"Fair subgrade; strength drops as moisture rises.",
		model.CodeA27: "Gravel and sand with highly plastic clayey fines. " +
			"Fair to poor subgrade; prone to swelling and loss of strength.",
		model.CodeA4: "Non-plastic or moderately plastic silty soil. " +
			"Fair to poor subgrade; susceptible to frost heave and pumping.",
		model.CodeA5: "Elastic silty soil, often diatomaceous or micaceous. " +
			"Poor subgrade; high rebound and compressibility.",
		model.CodeA6: "Plastic clay soil with moderate liquid limit. " +
			"Poor subgrade; large volume change between wet and dry states.",
		model.CodeA7: "Highly plastic elastic clay soil. " +
			"Poor to very poor subgrade; high shrink-swell potential.",
	}
}
