package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/aashto-classifier/internal/classification"
	"github.com/Veraticus/aashto-classifier/internal/cli"
	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/Veraticus/aashto-classifier/internal/config"
	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/Veraticus/aashto-classifier/internal/report"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single soil sample",
		Long: `Classify one soil sample from its Atterberg limits and sieve analysis.

The plasticity index is computed as LL - PL (never below zero), or zero when
the sample is marked non-plastic.

Examples:
  soil classify --ll 45 --pl 30 --pass10 70 --pass40 70 --pass200 50
  soil classify --np --pass10 60 --pass40 55 --pass200 8
  soil classify --ll 35 --pl 10 --pass10 20 --pass40 15 --pass200 90 --format json
  soil classify --ll 30 --pl 20 --out reports/`,
		Args: cobra.NoArgs,
		RunE: runClassify,
	}

	// Defaults match the laboratory entry form.
	cmd.Flags().Float64("ll", 30, "liquid limit (%)")
	cmd.Flags().Float64("pl", 20, "plastic limit (%)")
	cmd.Flags().Bool("np", false, "sample is non-plastic (N.P.)")
	cmd.Flags().Float64("pass10", 50, "percent passing No.10 sieve (2.0 mm)")
	cmd.Flags().Float64("pass40", 30, "percent passing No.40 sieve (0.425 mm)")
	cmd.Flags().Float64("pass200", 15, "percent passing No.200 sieve (0.075 mm)")
	cmd.Flags().String("label", "", "sample label shown in the report")
	cmd.Flags().StringP("out", "o", "", "write the report to this file or directory instead of stdout")

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	sample, err := sampleFromFlags(cmd)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	for _, a := range sample.Anomalies() {
		slog.Warn("Unusual measurement", "detail", a)
	}

	result := classification.Evaluate(sample)
	slog.Debug("Sample classified",
		"code", result.Code,
		"rule", result.Rule,
		"plasticity_index", result.PlasticityIndex)

	explanation := newInsightService(settings).Describe(cmd.Context(), result)
	rep := report.New(result, explanation)

	outPath, _ := cmd.Flags().GetString("out")
	if err := writeReport(cmd.OutOrStdout(), outPath, rep, settings); err != nil {
		return err
	}

	if !result.Classified() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
			cli.FormatWarning("No AASHTO group matched these measurements; check the input values and try again."))
	}
	return nil
}

func sampleFromFlags(cmd *cobra.Command) (model.Sample, error) {
	flags := cmd.Flags()

	var s model.Sample
	var err error
	values := []struct {
		dst  *float64
		name string
	}{
		{&s.LiquidLimit, "ll"},
		{&s.PlasticLimit, "pl"},
		{&s.PassingNo10, "pass10"},
		{&s.PassingNo40, "pass40"},
		{&s.PassingNo200, "pass200"},
	}
	for _, v := range values {
		if *v.dst, err = flags.GetFloat64(v.name); err != nil {
			return model.Sample{}, common.NewUserError("invalid --"+v.name, err)
		}
	}
	if s.NonPlastic, err = flags.GetBool("np"); err != nil {
		return model.Sample{}, common.NewUserError("invalid --np", err)
	}
	if s.Label, err = flags.GetString("label"); err != nil {
		return model.Sample{}, common.NewUserError("invalid --label", err)
	}

	return s, nil
}

// writeReport renders rep to stdout, or to outPath when set. A directory
// target receives a file named after the classification code.
func writeReport(stdout io.Writer, outPath string, rep *report.Report, settings *config.Settings) error {
	if outPath == "" {
		w, _, err := newReportWriter(stdout, settings)
		if err != nil {
			return err
		}
		return w.Write(rep)
	}

	format, err := report.ParseFormat(settings.OutputFormat)
	if err != nil {
		return err
	}

	path := config.ExpandPath(outPath)
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		path = filepath.Join(path, rep.Filename(format.Extension()))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("Failed to close report file", "error", closeErr)
		}
	}()

	w, _, err := newReportWriter(f, settings)
	if err != nil {
		return err
	}
	if err := w.Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	_, _ = fmt.Fprintln(stdout, cli.FormatSuccess(fmt.Sprintf("Report written to %s", path)))
	return nil
}
