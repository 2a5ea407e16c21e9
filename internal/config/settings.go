// Package config loads application settings from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/spf13/viper"
)

// Output formats understood by the report writer.
var outputFormats = map[string]struct{}{
	"text": {},
	"json": {},
	"yaml": {},
}

// Settings holds the resolved application configuration.
type Settings struct {
	OutputFormat     string
	InsightFallback  string
	LogLevel         string
	LogFormat        string
	BatchConcurrency int
	ChartWidth       int
	ShowChart        bool
	StaticInsight    bool
}

// DefaultSettings returns settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		OutputFormat:     "text",
		LogLevel:         "info",
		LogFormat:        "console",
		BatchConcurrency: 4,
		ChartWidth:       40,
		ShowChart:        true,
		StaticInsight:    true,
	}
}

// SetDefaults registers DefaultSettings on v so unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("output.format", d.OutputFormat)
	v.SetDefault("output.chart", d.ShowChart)
	v.SetDefault("output.chart_width", d.ChartWidth)
	v.SetDefault("logging.level", d.LogLevel)
	v.SetDefault("logging.format", d.LogFormat)
	v.SetDefault("batch.concurrency", d.BatchConcurrency)
	v.SetDefault("insight.static", d.StaticInsight)
	v.SetDefault("insight.fallback", d.InsightFallback)
}

// Load reads settings from v. Keys not present fall back to DefaultSettings.
func Load(v *viper.Viper) (*Settings, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: viper instance", common.ErrMissingConfig)
	}
	SetDefaults(v)

	s := &Settings{
		OutputFormat:     strings.ToLower(v.GetString("output.format")),
		ShowChart:        v.GetBool("output.chart"),
		ChartWidth:       v.GetInt("output.chart_width"),
		LogLevel:         v.GetString("logging.level"),
		LogFormat:        v.GetString("logging.format"),
		BatchConcurrency: v.GetInt("batch.concurrency"),
		StaticInsight:    v.GetBool("insight.static"),
		InsightFallback:  v.GetString("insight.fallback"),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every setting holds a usable value.
func (s *Settings) Validate() error {
	if _, ok := outputFormats[s.OutputFormat]; !ok {
		return fmt.Errorf("%w: output.format %q (want text, json or yaml)", common.ErrInvalidConfig, s.OutputFormat)
	}
	if s.BatchConcurrency < 1 {
		return fmt.Errorf("%w: batch.concurrency must be at least 1, got %d", common.ErrInvalidConfig, s.BatchConcurrency)
	}
	if s.ChartWidth < 10 {
		return fmt.Errorf("%w: output.chart_width must be at least 10, got %d", common.ErrInvalidConfig, s.ChartWidth)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ExpandPath expands a leading ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return os.ExpandEnv(path)
}
