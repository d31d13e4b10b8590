package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/config"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/chart"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/data"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/dataprep"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

// ErrNoInput is returned by clean when no input file is configured.
var ErrNoInput = errors.New("no input file: pass --input or set input in the config file")

func newCleanCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean a CSV file",
		Example: `  tabprep clean -i employees.csv -s median -o cleaned.csv
  tabprep clean -i employees.csv --plot box.png --report report.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Input == "" {
				return ErrNoInput
			}
			t, err := data.LoadCSV(cfg.Input, data.CSVOptions{
				Comma:   cfg.Comma(),
				Missing: cfg.CSV.Missing,
			})
			if err != nil {
				return err
			}
			logger.WithStage("load").Info("loaded table",
				"path", cfg.Input,
				"rows", t.Len(),
				"columns", len(t.Columns),
			)
			_, err = runPipeline(cmd.OutOrStdout(), t, cfg)
			return err
		},
	}
	cmd.Flags().StringP("input", "i", "", "CSV file to clean")
	cmd.Flags().String("csv-comma", "", "CSV field delimiter")
	addPipelineFlags(cmd)
	return cmd
}

func newSampleCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run the pipeline on a built-in sample table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := runPipeline(cmd.OutOrStdout(), data.SampleTable(), cfg)
			return err
		},
	}
	addPipelineFlags(cmd)
	return cmd
}

// runPipeline cleans t, prints before/after previews and the summary, then
// writes whatever outputs cfg asks for.
func runPipeline(w io.Writer, t *table.Table, cfg *config.Config) (*table.Table, error) {
	strategy := dataprep.ParseStrategy(cfg.Strategy)

	renderTable(w, "Before", t, cfg.Preview)
	p := dataprep.New(t)
	out := p.CleanData(strategy)
	_, _ = fmt.Fprintln(w)
	renderTable(w, fmt.Sprintf("After (%s)", strategy), out, cfg.Preview)
	_, _ = fmt.Fprintln(w)
	renderReport(w, p.Report())
	if last, ok := p.Report().Last(); ok {
		logger.Info("pipeline finished",
			"rows", last.RowsAfter,
			"removed", p.Report().RowsRemoved(),
		)
	}

	if cfg.Output != "" {
		if err := data.SaveCSV(cfg.Output, out); err != nil {
			return nil, err
		}
		logger.Info("saved cleaned table", "path", cfg.Output, "rows", out.Len())
	}
	if cfg.Plot != "" {
		err := chart.SaveBoxPlots(t, out, cfg.Plot)
		switch {
		case errors.Is(err, chart.ErrNoNumericColumns):
			logger.Warn("skipping box plots", "reason", err)
		case err != nil:
			return nil, err
		default:
			logger.Info("saved box plots", "path", cfg.Plot)
		}
	}
	if cfg.Report != "" {
		if err := writeReport(cfg.Report, p.Report()); err != nil {
			return nil, err
		}
		logger.Info("saved report", "path", cfg.Report)
	}
	return out, nil
}

func writeReport(path string, rep dataprep.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := rep.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
