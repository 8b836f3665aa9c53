package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/evalml/evalml/internal/datachecks"
	"github.com/evalml/evalml/internal/dataset"
	"github.com/evalml/evalml/internal/objectives"
	"github.com/evalml/evalml/internal/pipelines"
	"github.com/evalml/evalml/internal/problemtypes"
	"github.com/spf13/cobra"
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <data.csv>",
		Short: "Run data checks, then fit and score a simple pipeline",
		Long: `Run the configured data checks over a dataset and, when none reports an
error, fit a pipeline (simple imputer + estimator) on the numeric features and
score it in-sample.

Estimators:
  linear    ordinary least squares (regression only)
  baseline  mean prediction for regression, most frequent class otherwise

Exits with code 1 when a data check reports an error; nothing is fitted then.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runEvaluate,
		SilenceErrors: true,
	}
	cmd.Flags().String("target", "", "Name of the target column (required)")
	cmd.Flags().String("problem-type", "", "Problem type: binary | multiclass | regression | time series ...")
	cmd.Flags().String("estimator", "baseline", "Estimator: linear | baseline")
	cmd.Flags().String("impute-strategy", pipelines.ImputeMean, "Impute strategy: mean | median | most_frequent")
	cmd.Flags().String("objective", "", "Primary objective (defaults to the problem type's default objective)")
	cmd.Flags().StringSlice("additional-objectives", nil, "Extra objectives to score")
	cmd.Flags().Int64("random-state", 0, "Random state for estimators that sample")
	cmd.Flags().String("format", formatText, "Output format: text | json")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	format := stringFlagOr(cmd, "format", cfg.Defaults.Format)
	if err := validateFormat(format); err != nil {
		return err
	}
	pt, err := problemTypeFlag(cmd, cfg.Defaults.ProblemType)
	if err != nil {
		return err
	}
	obj, err := objectiveFlag(cmd, cfg.Defaults.Objective, pt)
	if err != nil {
		return err
	}
	target, _ := cmd.Flags().GetString("target")
	estimatorName, _ := cmd.Flags().GetString("estimator")
	randomState, _ := cmd.Flags().GetInt64("random-state")
	impute := stringFlagOr(cmd, "impute-strategy", cfg.Defaults.ImputeStrategy)

	extraNames, _ := cmd.Flags().GetStringSlice("additional-objectives")
	extra := make([]*objectives.Objective, 0, len(extraNames))
	for _, n := range extraNames {
		o, err := objectives.Get(n, pt)
		if err != nil {
			return err
		}
		extra = append(extra, o)
	}

	estimator, err := newEstimator(estimatorName, pt, randomState)
	if err != nil {
		return err
	}
	checks, err := cfg.BuildDataChecks(datachecks.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	frame, err := dataset.LoadCSV(args[0])
	if err != nil {
		return err
	}

	eval, err := pipelines.Evaluate(cmd.Context(), frame, target, checks, pipelines.Config{
		ProblemType:    pt,
		Objective:      obj,
		ImputeStrategy: impute,
		Estimator:      estimator,
		RandomState:    randomState,
		Logger:         slog.Default(),
	}, extra...)
	blocked := errors.Is(err, pipelines.ErrDataChecksFailed)
	if err != nil && !blocked {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		if err := writeJSON(out, eval); err != nil {
			return err
		}
	} else {
		writeEvaluateText(out, eval)
	}

	if blocked {
		return &DataCheckFailureError{Message: fmt.Sprintf("%s: pipeline not fitted", err)}
	}
	return nil
}

func newEstimator(name string, pt problemtypes.ProblemType, randomState int64) (pipelines.Estimator, error) {
	switch name {
	case "linear":
		if pt.IsClassification() {
			return nil, fmt.Errorf("estimator linear does not support problem type %s", pt)
		}
		return pipelines.NewLinearRegressor(), nil
	case "baseline":
		if pt.IsClassification() {
			return pipelines.NewBaselineClassifier(pipelines.BaselineMode, randomState)
		}
		return pipelines.NewBaselineRegressor(pipelines.BaselineMean)
	default:
		return nil, fmt.Errorf("unknown estimator %q: expected linear or baseline", name)
	}
}

func writeEvaluateText(w io.Writer, e *pipelines.Evaluation) {
	p := newPalette(w)
	if len(e.Messages) > 0 {
		fmt.Fprintln(w, p.bold.Sprint("Data checks")) //nolint:errcheck
		writeMessages(w, p, e.Messages)
		fmt.Fprintln(w) //nolint:errcheck
	}
	if e.Pipeline == "" {
		return
	}

	fmt.Fprintf(w, "%s\n", p.bold.Sprint(e.Pipeline)) //nolint:errcheck
	if len(e.Dropped) > 0 {
		fmt.Fprintf(w, "  dropped non-numeric: %v\n", e.Dropped) //nolint:errcheck
	}
	fmt.Fprintf(w, "  %s: %.4f\n", e.Objective, e.Score) //nolint:errcheck
	for _, name := range slices.Sorted(maps.Keys(e.OtherScores)) {
		fmt.Fprintf(w, "  %s: %.4f\n", name, e.OtherScores[name]) //nolint:errcheck
	}
	if len(e.Importances) > 0 {
		rows := make([][]string, len(e.Importances))
		for i, fi := range e.Importances {
			rows[i] = []string{fi.Feature, fmt.Sprintf("%.4f", fi.Importance)}
		}
		fmt.Fprintln(w) //nolint:errcheck
		writeTable(w, []string{"FEATURE", "IMPORTANCE"}, rows)
	}
}
