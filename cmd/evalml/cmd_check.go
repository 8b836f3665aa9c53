package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/evalml/evalml/internal/datachecks"
	"github.com/evalml/evalml/internal/dataset"
	"github.com/evalml/evalml/internal/projectconfig"
	"github.com/evalml/evalml/internal/telemetry"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <data.csv>...",
		Short: "Run data checks over one or more datasets",
		Long: `Run data checks over one or more CSV datasets before modeling.

The checks come from the data_checks list in .evalml.yaml, or the defaults
when none are configured:
  1. HighlyNullDataCheck - columns that are mostly null
  2. IDColumnsDataCheck - columns that look like row identifiers
  3. LabelLeakageDataCheck - features strongly correlated with the target
  4. InvalidTargetDataCheck - null target values

Files are checked concurrently; results are printed in argument order.
Files ending in .gz or .zst are decompressed transparently.

Exits with code 1 when any check reports an error.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCheck,
		SilenceErrors: true,
	}
	cmd.Flags().String("target", "", "Name of the target column (required)")
	cmd.Flags().String("format", projectconfig.DefaultFormat, "Output format: text | json")
	cmd.Flags().Int("workers", projectconfig.DefaultWorkers, "Number of files checked concurrently")
	cmd.Flags().String("metrics-textfile", "", "Write check metrics in Prometheus textfile format to this path")
	cmd.Flags().String("rows", "", "Only check data rows START-END (1-based, inclusive)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// --- JSON output structs ---

type checkJSONReport struct {
	RunID     string       `json:"run_id"`
	Timestamp string       `json:"timestamp"`
	Target    string       `json:"target"`
	Files     []fileReport `json:"files"`
}

type fileReport struct {
	Path       string              `json:"path"`
	Rows       int                 `json:"rows"`
	Columns    int                 `json:"columns"`
	Messages   datachecks.Messages `json:"messages"`
	DurationMs int64               `json:"duration_ms"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	format := stringFlagOr(cmd, "format", cfg.Defaults.Format)
	if err := validateFormat(format); err != nil {
		return err
	}
	workers := cfg.Defaults.Workers
	if cmd.Flags().Changed("workers") {
		if workers, err = cmd.Flags().GetInt("workers"); err != nil {
			return err
		}
	}
	if workers < 1 {
		return fmt.Errorf("invalid workers %d: must be at least 1", workers)
	}
	textfile := stringFlagOr(cmd, "metrics-textfile", cfg.Metrics.Textfile)
	rowsFlag, _ := cmd.Flags().GetString("rows")
	rows, err := parseRowRange(rowsFlag)
	if err != nil {
		return err
	}

	recorder := telemetry.NewRecorder()
	checks, err := cfg.BuildDataChecks(
		datachecks.WithLogger(slog.Default()),
		datachecks.WithObserver(recorder),
	)
	if err != nil {
		return err
	}

	reports, err := checkFiles(cmd, checks, args, target, workers, rows)
	if err != nil {
		recorder.ObserveDataset(telemetry.ResultError)
		writeTextfile(recorder, textfile)
		return err
	}

	failed := 0
	for _, r := range reports {
		if r.Messages.HasErrors() {
			failed++
			recorder.ObserveDataset(telemetry.ResultFailed)
		} else {
			recorder.ObserveDataset(telemetry.ResultPassed)
		}
	}
	writeTextfile(recorder, textfile)

	out := cmd.OutOrStdout()
	if format == formatJSON {
		err = writeJSON(out, checkJSONReport{
			RunID:     uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Target:    target,
			Files:     reports,
		})
	} else {
		writeCheckText(out, reports)
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return &DataCheckFailureError{
			Message: fmt.Sprintf("data checks reported errors in %s", plural(failed, "file")),
		}
	}
	return nil
}

// checkFiles validates every path concurrently. The first load or check
// failure cancels the remaining files.
func checkFiles(cmd *cobra.Command, checks *datachecks.DataChecks, paths []string, target string, workers int, rows *rowRange) ([]fileReport, error) {
	reports := make([]fileReport, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			var frame *dataset.Frame
			var err error
			if rows != nil {
				frame, err = dataset.LoadCSVRange(path, rows.start, rows.end)
			} else {
				frame, err = dataset.LoadCSV(path)
			}
			if err != nil {
				return err
			}
			X, y, err := frame.Split(target)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			messages, err := checks.Validate(X, y)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			slog.Debug("checked dataset", "path", path, "rows", frame.Len(), "messages", len(messages))
			reports[i] = fileReport{
				Path:       path,
				Rows:       frame.Len(),
				Columns:    X.Width(),
				Messages:   messages,
				DurationMs: time.Since(start).Milliseconds(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeCheckText(w io.Writer, reports []fileReport) {
	p := newPalette(w)
	var warnings, errs int
	for _, r := range reports {
		fmt.Fprintf(w, "%s %s\n", p.bold.Sprint(r.Path), //nolint:errcheck
			printer.Sprintf("(%d rows, %d columns)", r.Rows, r.Columns))
		if len(r.Messages) == 0 {
			fmt.Fprintf(w, "  %s\n", p.ok.Sprint("no issues found")) //nolint:errcheck
		}
		writeMessages(w, p, r.Messages)
		warnings += len(r.Messages.Warnings())
		errs += len(r.Messages.Errors())
		fmt.Fprintln(w) //nolint:errcheck
	}
	fmt.Fprintf(w, "Summary: %s, %s, %s\n", //nolint:errcheck
		plural(len(reports), "file"), plural(warnings, "warning"), plural(errs, "error"))
}

func writeTextfile(recorder *telemetry.Recorder, path string) {
	if path == "" {
		return
	}
	if err := recorder.WriteTextfile(path); err != nil {
		slog.Warn("metrics not written", "path", path, "error", err.Error())
	}
}

type rowRange struct{ start, end int }

// parseRowRange parses "START-END"; an empty string means all rows.
func parseRowRange(s string) (*rowRange, error) {
	if s == "" {
		return nil, nil
	}
	invalid := fmt.Errorf("invalid rows %q: expected START-END", s)
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return nil, invalid
	}
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil, invalid
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil, invalid
	}
	return &rowRange{start: start, end: end}, nil
}

// loadProjectConfig loads .evalml.yaml from the working directory upwards.
func loadProjectConfig() (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return projectconfig.Load(wd)
}

// stringFlagOr returns the flag's value when set on the command line and
// fallback otherwise, keeping the flag default when fallback is empty.
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	v, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) || fallback == "" {
		return v
	}
	return fallback
}
