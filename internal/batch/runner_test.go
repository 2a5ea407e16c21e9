package batch

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/Veraticus/aashto-classifier/internal/insight"
	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/Veraticus/aashto-classifier/internal/report"
	"github.com/Veraticus/aashto-classifier/internal/testutil/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labSamples() []model.Sample {
	set := samples.FixtureLab.Samples()
	names := []samples.Name{
		samples.NameGravel,
		samples.NameFineSand,
		samples.NameHighPlasticityClay,
		samples.NameLeanClay,
		samples.NameInvertedLimits,
		samples.NameGapGraded,
	}

	out := make([]model.Sample, 0, len(names))
	for _, n := range names {
		s, _ := set.Find(n)
		out = append(out, s)
	}
	return out
}

func TestRunner_Run(t *testing.T) {
	var progress bytes.Buffer
	runner := NewRunner(Config{Concurrency: 3, Progress: &progress})

	reports, err := runner.Run(context.Background(), labSamples())
	require.NoError(t, err)
	require.Len(t, reports, 6)

	want := []model.Code{model.CodeA1a, model.CodeA3, model.CodeA7, model.CodeA6, model.CodeA4, model.CodeUnclassifiable}
	for i, rep := range reports {
		require.NotNil(t, rep)
		assert.Equal(t, labSamples()[i].ID, rep.Result.Sample.ID, "reports keep input order")
		assert.Equal(t, want[i], rep.Result.Code, rep.Result.Sample.ID)
		assert.NotEmpty(t, rep.Explanation)
	}

	assert.Equal(t, "Standard properties for A-7: Clayey soils", reports[2].Explanation)
	assert.Equal(t, insight.UnclassifiedText, reports[5].Explanation)
	assert.NotEmpty(t, progress.String())
}

func TestRunner_UsesExplainer(t *testing.T) {
	var calls atomic.Int32
	svc := insight.NewService(insight.ExplainerFunc(func(_ context.Context, code model.Code, _ string) (string, error) {
		calls.Add(1)
		if code == model.CodeA3 {
			return "", errors.New("generator offline")
		}
		return "commentary for " + code.String(), nil
	}), nil)

	runner := NewRunner(Config{Insight: svc, Concurrency: 2})
	reports, err := runner.Run(context.Background(), labSamples()[:3])
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "commentary for A-1-a", reports[0].Explanation)
	assert.Equal(t, "Standard properties for A-3: Fine sand", reports[1].Explanation)
}

func TestRunner_Empty(t *testing.T) {
	_, err := NewRunner(Config{}).Run(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrNoSamples)
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := NewRunner(Config{Concurrency: 2}).Run(ctx, labSamples())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, reports)
}

func TestSummarize(t *testing.T) {
	reports, err := NewRunner(Config{Concurrency: 4}).Run(context.Background(), labSamples())
	require.NoError(t, err)

	stats := Summarize(append(reports, nil))

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Granular)
	assert.Equal(t, 4, stats.SiltClay)
	assert.Equal(t, 1, stats.Unclassifiable)
	assert.GreaterOrEqual(t, stats.Anomalous, 1)

	codes := make([]model.Code, 0, len(stats.ByCode))
	for _, c := range stats.ByCode {
		codes = append(codes, c.Code)
		assert.Equal(t, 1, c.Count)
	}
	assert.Equal(t, []model.Code{
		model.CodeA1a, model.CodeA3, model.CodeA4, model.CodeA6, model.CodeA7, model.CodeUnclassifiable,
	}, codes)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize([]*report.Report{})
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByCode)
}
