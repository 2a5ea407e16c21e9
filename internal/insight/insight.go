// Package insight produces the explanatory text that accompanies a classification.
//
// Text generation is delegated to an injected Explainer. When none is configured,
// or it fails, the Service falls back to a canned description built from the
// classification alone so a report can always be produced.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/aashto-classifier/internal/model"
)

// Explainer generates free-text commentary for a classification.
type Explainer interface {
	Explain(ctx context.Context, code model.Code, constituents string) (string, error)
}

// ExplainerFunc adapts a function to the Explainer interface.
type ExplainerFunc func(ctx context.Context, code model.Code, constituents string) (string, error)

// Explain calls f.
func (f ExplainerFunc) Explain(ctx context.Context, code model.Code, constituents string) (string, error) {
	return f(ctx, code, constituents)
}

// UnclassifiedText is shown when there is no classification to explain.
const UnclassifiedText = "The sample could not be classified. Check the Atterberg limits and sieve percentages and try again."

// CannedText is the description used when no explainer output is available.
func CannedText(code model.Code, constituents string) string {
	return fmt.Sprintf("Standard properties for %s: %s", code, constituents)
}

// Prompt returns the request an external text generator should answer for code.
func Prompt(code model.Code) string {
	return fmt.Sprintf("Explain AASHTO %s soil classification in 50 words for civil engineers. "+
		"Include: key properties, typical uses in construction, and limitations.", code)
}

// Service resolves the explanation for a classification result.
type Service struct {
	explainer Explainer
	logger    *slog.Logger
	fallback  string
}

// Option configures a Service.
type Option func(*Service)

// WithFallbackText replaces CannedText with a fixed message. Blank text is ignored.
func WithFallbackText(text string) Option {
	return func(s *Service) {
		s.fallback = strings.TrimSpace(text)
	}
}

// NewService creates a Service. explainer may be nil.
func NewService(explainer Explainer, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		explainer: explainer,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasExplainer reports whether an explainer is configured.
func (s *Service) HasExplainer() bool {
	return s.explainer != nil
}

func (s *Service) fallbackText(result model.Result) string {
	if s.fallback != "" {
		return s.fallback
	}
	return CannedText(result.Code, result.Constituents)
}

// Describe returns the explanation for result. It never fails: explainer
// errors and blank output degrade to the fallback text.
func (s *Service) Describe(ctx context.Context, result model.Result) string {
	if !result.Classified() {
		return UnclassifiedText
	}

	fallback := s.fallbackText(result)
	if s.explainer == nil {
		return fallback
	}

	text, err := s.explainer.Explain(ctx, result.Code, result.Constituents)
	if err != nil {
		s.logger.Warn("Explanation unavailable, using standard description",
			"code", result.Code,
			"error", err)
		return fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Debug("Explainer returned empty text", "code", result.Code)
		return fallback
	}

	return text
}
