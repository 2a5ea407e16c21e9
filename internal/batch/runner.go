package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/Veraticus/aashto-classifier/internal/classification"
	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/Veraticus/aashto-classifier/internal/insight"
	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/Veraticus/aashto-classifier/internal/report"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Runner classifies samples concurrently and builds a report for each.
type Runner struct {
	classifier  *classification.Classifier
	insight     *insight.Service
	logger      *slog.Logger
	progress    io.Writer
	concurrency int
}

// Config configures a Runner. Zero values select the default classifier,
// an insight service without an explainer, a single worker and no progress bar.
type Config struct {
	Classifier  *classification.Classifier
	Insight     *insight.Service
	Logger      *slog.Logger
	Progress    io.Writer
	Concurrency int
}

// NewRunner creates a Runner from cfg.
func NewRunner(cfg Config) *Runner {
	if cfg.Classifier == nil {
		cfg.Classifier = classification.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Insight == nil {
		cfg.Insight = insight.NewService(nil, cfg.Logger)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	return &Runner{
		classifier:  cfg.Classifier,
		insight:     cfg.Insight,
		logger:      cfg.Logger,
		progress:    cfg.Progress,
		concurrency: cfg.Concurrency,
	}
}

// Run classifies every sample and returns the reports in input order.
// It stops early when ctx is canceled.
func (r *Runner) Run(ctx context.Context, samples []model.Sample) ([]*report.Report, error) {
	if len(samples) == 0 {
		return nil, common.ErrNoSamples
	}

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = newProgressBar(r.progress, len(samples))
	}

	reports := make([]*report.Report, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range samples {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := r.classifier.Evaluate(samples[i])
			explanation := r.insight.Describe(gctx, result)
			reports[i] = report.New(result, explanation)

			if !result.Classified() {
				common.LogWarn(r.logger, "Sample could not be classified", common.Fields{
					"id":    samples[i].ID,
					"label": samples[i].Label,
				})
			}

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch classification interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch classification interrupted: %w", err)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return reports, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classifying samples...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}

// CodeCount is the number of samples assigned one code.
type CodeCount struct {
	Code  model.Code
	Count int
}

// Stats summarizes a batch.
type Stats struct {
	ByCode         []CodeCount
	Total          int
	Granular       int
	SiltClay       int
	Unclassifiable int
	Anomalous      int
}

// Summarize counts reports by code and material type. Codes appear in
// decision table order with the unclassifiable count last.
func Summarize(reports []*report.Report) Stats {
	counts := make(map[model.Code]int)
	var stats Stats

	for _, rep := range reports {
		if rep == nil {
			continue
		}
		stats.Total++
		counts[rep.Result.Code]++

		switch rep.Result.MaterialType {
		case model.MaterialGranular:
			stats.Granular++
		case model.MaterialSiltClay:
			stats.SiltClay++
		}
		if !rep.Result.Classified() {
			stats.Unclassifiable++
		}
		if len(rep.Anomalies) > 0 {
			stats.Anomalous++
		}
	}

	order := make(map[model.Code]int)
	for i, c := range model.Codes() {
		order[c] = i
	}
	order[model.CodeUnclassifiable] = len(order)

	for code, n := range counts {
		stats.ByCode = append(stats.ByCode, CodeCount{Code: code, Count: n})
	}
	sort.Slice(stats.ByCode, func(i, j int) bool {
		return order[stats.ByCode[i].Code] < order[stats.ByCode[j].Code]
	})

	return stats
}
