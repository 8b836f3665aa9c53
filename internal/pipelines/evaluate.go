package pipelines

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/evalml/evalml/internal/datachecks"
	"github.com/evalml/evalml/internal/dataset"
	"github.com/evalml/evalml/internal/objectives"
	"gonum.org/v1/gonum/mat"
)

// ErrDataChecksFailed is returned by Evaluate when a data check reports an
// error-level finding. The Evaluation still carries the messages.
var ErrDataChecksFailed = errors.New("data checks reported errors")

// FeatureImportance pairs a feature name with its importance.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// Evaluation is the outcome of Evaluate.
type Evaluation struct {
	Pipeline    string              `json:"pipeline,omitempty"`
	Parameters  map[string]any      `json:"parameters,omitempty"`
	Messages    datachecks.Messages `json:"messages"`
	Features    []string            `json:"features,omitempty"`
	Dropped     []string            `json:"dropped,omitempty"`
	Objective   string              `json:"objective,omitempty"`
	Score       float64             `json:"score"`
	OtherScores map[string]float64  `json:"other_scores,omitempty"`
	Importances []FeatureImportance `json:"feature_importances,omitempty"`
}

// Evaluate runs checks over frame, then fits a pipeline built from cfg on the
// numeric features and scores it in-sample with the primary objective and
// others. Fitting is skipped when any check reports an error; the returned
// error then wraps ErrDataChecksFailed. A nil checks runs the defaults.
func Evaluate(ctx context.Context, frame *dataset.Frame, target string, checks *datachecks.DataChecks, cfg Config, others ...*objectives.Objective) (*Evaluation, error) {
	if checks == nil {
		checks = datachecks.DefaultDataChecks()
	}
	X, y, err := frame.Split(target)
	if err != nil {
		return nil, err
	}

	messages, err := checks.Validate(X, y)
	if err != nil {
		return nil, err
	}
	eval := &Evaluation{Messages: messages}
	if messages.HasErrors() {
		return eval, fmt.Errorf("%w: %d error(s)", ErrDataChecksFailed, len(messages.Errors()))
	}
	if err := ctx.Err(); err != nil {
		return eval, err
	}

	p, err := New(cfg)
	if err != nil {
		return eval, err
	}
	eval.Pipeline = p.Name()
	eval.Parameters = p.Parameters()
	eval.Objective = p.Objective().Name

	var numeric []string
	for _, col := range X.Columns() {
		if col.IsNumeric() {
			numeric = append(numeric, col.Name)
			continue
		}
		eval.Dropped = append(eval.Dropped, col.Name)
	}
	if len(numeric) == 0 {
		return eval, errors.New("no numeric features to fit on")
	}
	if len(eval.Dropped) > 0 {
		p.logger.Debug("dropping non-numeric features", "columns", eval.Dropped)
	}
	eval.Features = numeric

	features, err := X.Drop(eval.Dropped...).Matrix()
	if err != nil {
		return eval, err
	}
	targetValues, err := y.Floats()
	if err != nil {
		return eval, fmt.Errorf("target: %w", err)
	}
	yVec := mat.NewVecDense(len(targetValues), targetValues)

	if err := p.Fit(features, yVec); err != nil {
		return eval, err
	}
	if err := ctx.Err(); err != nil {
		return eval, err
	}

	eval.Score, eval.OtherScores, err = p.Score(features, yVec, others...)
	if err != nil {
		return eval, err
	}

	if importances, err := p.FeatureImportances(); err == nil {
		for i, v := range importances {
			eval.Importances = append(eval.Importances, FeatureImportance{Feature: numeric[i], Importance: v})
		}
		sort.SliceStable(eval.Importances, func(i, j int) bool {
			return eval.Importances[i].Importance > eval.Importances[j].Importance
		})
	}
	return eval, nil
}
