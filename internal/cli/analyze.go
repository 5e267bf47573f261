package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/anomredux/boomi-du/internal/config"
	"github.com/anomredux/boomi-du/internal/diag"
	"github.com/anomredux/boomi-du/internal/loader"
	"github.com/anomredux/boomi-du/internal/reconcile"
	"github.com/anomredux/boomi-du/internal/report"
)

// AnalyzeOptions holds flags that override the [report] config section.
type AnalyzeOptions struct {
	*RootOptions
	TopN   int
	Output string
	Format string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Scan the Atom and report disk usage per process",
		Long: `Scan process definitions, execution history and container logs, then
print the processes ranked by total and by average size and write the full
CSV report.

Example:
  boomi-du analyze
  boomi-du analyze --top 50 --output /tmp/usage.csv
  boomi-du analyze --format json > usage.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts.Verbose)
		},
	}

	cmd.Flags().IntVar(&opts.TopN, "top", 0, "number of processes shown per table (default from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "CSV report path (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "console output format: text, json or yaml (default from config)")

	return cmd
}

// loadConfig reads the config file and applies any report flags that were set.
func loadConfig(cmd *cobra.Command, opts *AnalyzeOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Report.TopN = opts.TopN
	}
	if flags.Changed("output") {
		cfg.Report.Output = opts.Output
	}
	if flags.Changed("format") {
		cfg.Report.Format = opts.Format
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogging(w io.Writer, cfg config.Config, verbose bool) {
	level, _ := config.ParseLevel(cfg.Logging.Level)
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runAnalyze(out, errOut io.Writer, cfg config.Config, verbose bool) error {
	setupLogging(errOut, cfg, verbose)
	text := cfg.Report.Format == "text"

	if text {
		fmt.Fprintln(out, "Boomi Process Log Space Analyzer")
		fmt.Fprintf(out, "Execution Directory: %s\n", cfg.Paths.Executions)
		fmt.Fprintf(out, "Processes Directory: %s\n", cfg.Paths.Definitions)
		fmt.Fprintf(out, "Logs Directory: %s\n\n", cfg.Paths.Logs)
	}

	collector := diag.New(slog.Default())
	ld := loader.New(afero.NewOsFs(), cfg.Paths, collector)

	defs := ld.Definitions()
	defSizes := ld.DefinitionSizes()
	execs := ld.Executions()
	logs := ld.SharedLogs()

	res := reconcile.Reconcile(reconcile.Input{
		Definitions:     defs,
		DefinitionSizes: defSizes,
		Executions:      execs,
	}, reconcile.Options{ExactFallback: cfg.Reconcile.ExactFallback})

	if msg := res.Diagnostic(); msg != "" {
		slog.Warn(msg)
	}
	if len(res.Stats) == 0 {
		fmt.Fprintln(out, "No execution data found. Please check the directory paths.")
		return nil
	}

	byTotal := report.ByTotalSize(res.Stats)
	summary := report.NewSummary(res.Stats, execs, logs)
	summary.UnknownNames = res.UnknownNames
	summary.UnknownDiagnostic = res.Diagnostic()
	summary.Warnings = collector.Len()

	if err := report.WriteCSVFile(cfg.Report.Output, byTotal); err != nil {
		return err
	}
	csvPath, err := filepath.Abs(cfg.Report.Output)
	if err != nil {
		csvPath = cfg.Report.Output
	}

	if !text {
		slog.Info("csv report written", "path", csvPath)
		return report.Encode(out, cfg.Report.Format, report.NewDocument(summary, byTotal))
	}

	fmt.Fprintln(out, report.RenderTable("TOP PROCESSES BY TOTAL EXECUTION SIZE", byTotal, cfg.Report.TopN))
	fmt.Fprintln(out, report.RenderTable("TOP PROCESSES BY AVERAGE EXECUTION SIZE", report.ByAverageSize(res.Stats), cfg.Report.TopN))
	fmt.Fprintf(out, "Detailed CSV report written to: %s\n\n", csvPath)
	fmt.Fprint(out, report.RenderSummary(summary))
	return nil
}
