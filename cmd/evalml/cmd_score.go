package main

import (
	"fmt"
	"io"

	"github.com/evalml/evalml/internal/dataset"
	"github.com/evalml/evalml/internal/objectives"
	"github.com/evalml/evalml/internal/problemtypes"
	"github.com/evalml/evalml/internal/statistics"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <predictions.csv>",
		Short: "Score predictions with an objective",
		Long: `Score predictions stored in a CSV file with a named objective.

--predicted names the prediction columns: one column of labels or values for
hard-prediction objectives, the positive class probability for binary
probability objectives, or one probability column per class (ascending label
order) for multiclass probability objectives.

With --bootstrap, a percentile confidence interval at the given level is
reported. --compare scores a second set of prediction columns on the same
resamples and reports whether the difference is significant.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runScore,
		SilenceErrors: true,
	}
	cmd.Flags().String("objective", "", "Objective name (defaults to the problem type's default objective)")
	cmd.Flags().String("problem-type", "", "Problem type: binary | multiclass | regression | time series ...")
	cmd.Flags().String("target", "", "Name of the ground truth column (required)")
	cmd.Flags().StringSlice("predicted", nil, "Prediction column(s) (required)")
	cmd.Flags().StringSlice("compare", nil, "Prediction column(s) of a second model to compare against")
	cmd.Flags().Float64("bootstrap", 0, "Confidence level for a bootstrap interval, e.g. 0.95")
	cmd.Flags().Int("iterations", statistics.DefaultBootstrapIterations, "Bootstrap resamples")
	cmd.Flags().Int64("seed", -1, "Bootstrap random seed; negative for non-deterministic")
	cmd.Flags().String("format", formatText, "Output format: text | json")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("predicted")
	return cmd
}

type scoreJSONReport struct {
	Objective   string                         `json:"objective"`
	ProblemType problemtypes.ProblemType       `json:"problem_type"`
	Rows        int                            `json:"rows"`
	Score       float64                        `json:"score"`
	Interval    *statistics.ConfidenceInterval `json:"interval,omitempty"`
	Comparison  *comparisonJSON                `json:"comparison,omitempty"`
}

type comparisonJSON struct {
	Score       float64                       `json:"score"`
	Difference  statistics.ConfidenceInterval `json:"difference"`
	Significant bool                          `json:"significant"`
}

func runScore(cmd *cobra.Command, args []string) error {
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
	predicted, _ := cmd.Flags().GetStringSlice("predicted")
	compare, _ := cmd.Flags().GetStringSlice("compare")
	level, _ := cmd.Flags().GetFloat64("bootstrap")
	iterations, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetInt64("seed")
	if len(compare) > 0 && level == 0 {
		level = 0.95
	}

	frame, err := dataset.LoadCSV(args[0])
	if err != nil {
		return err
	}
	truth, err := columnVector(frame, target)
	if err != nil {
		return err
	}
	preds, err := columnsMatrix(frame, predicted)
	if err != nil {
		return err
	}

	report := scoreJSONReport{Objective: obj.Name, ProblemType: pt, Rows: frame.Len()}
	if report.Score, err = obj.Score(preds, truth); err != nil {
		return err
	}

	opts := statistics.Options{Level: level, Iterations: iterations, Seed: seed}
	if level > 0 {
		ci, err := statistics.BootstrapScore(obj, preds, truth, opts)
		if err != nil {
			return err
		}
		report.Interval = &ci
	}
	if len(compare) > 0 {
		other, err := columnsMatrix(frame, compare)
		if err != nil {
			return err
		}
		otherScore, err := obj.Score(other, truth)
		if err != nil {
			return err
		}
		diff, err := statistics.BootstrapDifference(obj, preds, other, truth, opts)
		if err != nil {
			return err
		}
		report.Comparison = &comparisonJSON{Score: otherScore, Difference: diff, Significant: statistics.IsSignificant(diff)}
	}

	if format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	writeScoreText(cmd.OutOrStdout(), report)
	return nil
}

func writeScoreText(w io.Writer, r scoreJSONReport) {
	fmt.Fprintf(w, "%s (%s, %s): %.4f\n", r.Objective, r.ProblemType, plural(r.Rows, "row"), r.Score) //nolint:errcheck
	if r.Interval != nil {
		fmt.Fprintf(w, "  %g%% CI [%.4f, %.4f] over %s\n", //nolint:errcheck
			r.Interval.ConfidenceLevel*100, r.Interval.Lower, r.Interval.Upper, plural(r.Interval.NumBootstraps, "resample"))
		if r.Interval.Skipped > 0 {
			fmt.Fprintf(w, "  %s could not be scored\n", plural(r.Interval.Skipped, "resample")) //nolint:errcheck
		}
	}
	if c := r.Comparison; c != nil {
		verdict := "not significant"
		if c.Significant {
			verdict = "significant"
		}
		fmt.Fprintf(w, "Compared: %.4f, difference %+.4f CI [%.4f, %.4f] (%s)\n", //nolint:errcheck
			c.Score, c.Difference.Score, c.Difference.Lower, c.Difference.Upper, verdict)
	}
}

// problemTypeFlag resolves --problem-type, falling back to the configured
// default.
func problemTypeFlag(cmd *cobra.Command, fallback string) (problemtypes.ProblemType, error) {
	v := stringFlagOr(cmd, "problem-type", fallback)
	if v == "" {
		return "", fmt.Errorf("--problem-type is required (or set defaults.problem_type in .evalml.yaml)")
	}
	return problemtypes.Parse(v)
}

// objectiveFlag resolves --objective for pt, falling back to the configured
// default and then the registry default.
func objectiveFlag(cmd *cobra.Command, fallback string, pt problemtypes.ProblemType) (*objectives.Objective, error) {
	name := stringFlagOr(cmd, "objective", fallback)
	if name == "" {
		return objectives.Default(pt), nil
	}
	return objectives.Get(name, pt)
}

func columnVector(frame *dataset.Frame, name string) (*mat.VecDense, error) {
	col, ok := frame.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	vals, err := col.Floats()
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(vals), vals), nil
}

func columnsMatrix(frame *dataset.Frame, names []string) (*mat.Dense, error) {
	cols := make([]*dataset.Column, len(names))
	for i, n := range names {
		col, ok := frame.Column(n)
		if !ok {
			return nil, fmt.Errorf("column %q not found", n)
		}
		cols[i] = col
	}
	selected, err := dataset.NewFrame(cols...)
	if err != nil {
		return nil, err
	}
	return selected.Matrix()
}
