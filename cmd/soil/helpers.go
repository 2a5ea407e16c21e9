package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/aashto-classifier/internal/config"
	"github.com/Veraticus/aashto-classifier/internal/insight"
	"github.com/Veraticus/aashto-classifier/internal/report"
	"github.com/spf13/viper"
)

// loadSettings resolves configuration from the global viper instance.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// newInsightService wires the explainer selected by configuration.
func newInsightService(settings *config.Settings) *insight.Service {
	var explainer insight.Explainer
	if settings.StaticInsight {
		explainer = insight.NewStaticExplainer(nil)
	}

	slog.Debug("Insight service configured",
		"static", settings.StaticInsight,
		"custom_fallback", settings.InsightFallback != "")

	return insight.NewService(explainer, slog.Default(), insight.WithFallbackText(settings.InsightFallback))
}

// newReportWriter creates a writer for the configured output format.
func newReportWriter(out io.Writer, settings *config.Settings) (*report.Writer, report.Format, error) {
	format, err := report.ParseFormat(settings.OutputFormat)
	if err != nil {
		return nil, "", err
	}

	w, err := report.NewWriter(out, format, report.Options{
		ShowChart:  settings.ShowChart,
		ChartWidth: settings.ChartWidth,
	})
	if err != nil {
		return nil, "", err
	}
	return w, format, nil
}
