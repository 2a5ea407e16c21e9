package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Veraticus/aashto-classifier/internal/batch"
	"github.com/Veraticus/aashto-classifier/internal/cli"
	"github.com/Veraticus/aashto-classifier/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Classify every sample in a CSV, JSON or YAML file",
		Long: `Classify a file of soil samples and print a report for each.

CSV files need a header row. Recognised columns are id, label, ll, pl, np,
pass10, pass40 and pass200 (No.10, passing_no10 and similar spellings also
work). "N.P." in the ll or pl column marks a sample non-plastic.

JSON and YAML files hold a list of samples, or a document with a "samples" key,
using the field names liquid_limit, plastic_limit, non_plastic, passing_no10,
passing_no40 and passing_no200.

Examples:
  soil batch lab-results.csv
  soil batch borehole-3.yaml --format json --out borehole-3.json
  soil batch lab-results.csv --summary-only`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().IntP("concurrency", "c", 4, "number of samples classified in parallel")
	cmd.Flags().StringP("out", "o", "", "write reports to this file instead of stdout")
	cmd.Flags().Bool("summary-only", false, "print only the batch summary")
	cmd.Flags().Bool("progress", false, "show a progress bar on stderr")

	_ = viper.BindPFlag("batch.concurrency", cmd.Flags().Lookup("concurrency"))

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	path := config.ExpandPath(args[0])
	samples, err := batch.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}
	slog.Info("Loaded samples", "file", path, "count", len(samples))

	var progress io.Writer
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress {
		progress = cmd.ErrOrStderr()
	}

	runner := batch.NewRunner(batch.Config{
		Insight:     newInsightService(settings),
		Logger:      slog.Default(),
		Progress:    progress,
		Concurrency: settings.BatchConcurrency,
	})

	reports, err := runner.Run(ctx, samples)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	summaryOnly, _ := cmd.Flags().GetBool("summary-only")
	if !summaryOnly {
		out := stdout
		outPath, _ := cmd.Flags().GetString("out")
		if outPath != "" {
			outPath = config.ExpandPath(outPath)
			f, createErr := os.Create(outPath)
			if createErr != nil {
				return fmt.Errorf("failed to create output file: %w", createErr)
			}
			defer func() {
				if closeErr := f.Close(); closeErr != nil {
					slog.Error("Failed to close output file", "error", closeErr)
				}
			}()
			out = f
		}

		w, _, writerErr := newReportWriter(out, settings)
		if writerErr != nil {
			return writerErr
		}
		if err := w.WriteAll(reports); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}
		if outPath != "" {
			_, _ = fmt.Fprintln(stdout, cli.FormatSuccess(fmt.Sprintf("%d reports written to %s", len(reports), outPath)))
		}
	}

	_, err = fmt.Fprint(stdout, renderSummary(batch.Summarize(reports)))
	return err
}

func renderSummary(stats batch.Stats) string {
	rows := make([][]string, 0, len(stats.ByCode))
	for _, c := range stats.ByCode {
		rows = append(rows, []string{cli.FormatCode(c.Code), strconv.Itoa(c.Count)})
	}

	content := cli.RenderTable([]string{"Code", "Samples"}, rows) +
		fmt.Sprintf("\n  • Samples: %d\n", stats.Total) +
		fmt.Sprintf("  • Granular: %d\n", stats.Granular) +
		fmt.Sprintf("  • Silt-clay: %d\n", stats.SiltClay) +
		fmt.Sprintf("  • Unclassifiable: %d\n", stats.Unclassifiable) +
		fmt.Sprintf("  • With unusual measurements: %d", stats.Anomalous)

	return cli.RenderBox(cli.ChartIcon+" Batch Summary", content) + "\n"
}
