// Package cli provides the tabprep command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/config"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     = new(config.Config)
	)

	rootCmd := &cobra.Command{
		Use:   "tabprep",
		Short: "Clean tabular data: impute gaps, drop duplicates, remove outliers",
		Long: `tabprep cleans a CSV table in three fixed steps:

  1. fill or drop missing values (mean, median, mode or drop)
  2. remove exact duplicate rows, keeping the first
  3. remove rows outside [Q1-1.5*IQR, Q3+1.5*IQR] of any numeric column`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			loaded, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := loaded.Validate(); err != nil {
				return err
			}
			if err := loaded.ApplyLogging(); err != nil {
				return err
			}
			*cfg = *loaded
			logger.Debug("config loaded",
				"file", cfgFile,
				"strategy", cfg.Strategy,
				"input", cfg.Input,
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	rootCmd.AddCommand(
		newCleanCmd(cfg),
		newSampleCmd(cfg),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tabprep %s (%s)\n", Version, GitCommit)
			return err
		},
	}
}

// addPipelineFlags registers the flags shared by commands that run the
// cleaning pipeline.
func addPipelineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", "write the cleaned table to this CSV file")
	f.StringP("strategy", "s", "", "missing value strategy: mean, median, mode or drop")
	f.IntP("preview", "n", 0, "rows to show before and after (0 shows all)")
	f.String("plot", "", "save before/after box plots to this image file (.png, .svg, .pdf)")
	f.String("report", "", "write the cleaning report to this YAML file")
}
