package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), *s)
}

func TestLoad_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `output:
  format: JSON
  chart: false
batch:
  concurrency: 8
insight:
  static: false
  fallback: "No commentary available."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "json", s.OutputFormat)
	assert.False(t, s.ShowChart)
	assert.Equal(t, 8, s.BatchConcurrency)
	assert.False(t, s.StaticInsight)
	assert.Equal(t, "No commentary available.", s.InsightFallback)
	assert.Equal(t, 40, s.ChartWidth)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		set    map[string]any
		name   string
		errMsg string
	}{
		{
			name:   "unknown output format",
			set:    map[string]any{"output.format": "pdf"},
			errMsg: "output.format",
		},
		{
			name:   "zero concurrency",
			set:    map[string]any{"batch.concurrency": 0},
			errMsg: "batch.concurrency",
		},
		{
			name:   "narrow chart",
			set:    map[string]any{"output.chart_width": 3},
			errMsg: "chart_width",
		},
		{
			name:   "bad log level",
			set:    map[string]any{"logging.level": "loud"},
			errMsg: "log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}

			s, err := Load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, s)
		})
	}
}

func TestLoad_NilViper(t *testing.T) {
	_, err := Load(nil)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SOIL_TEST_DIR", "/data/lab")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/samples.csv", want: filepath.Join(home, "samples.csv")},
		{input: "$SOIL_TEST_DIR/samples.csv", want: "/data/lab/samples.csv"},
		{input: "/abs/path.yaml", want: "/abs/path.yaml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.input), tt.input)
	}
}
