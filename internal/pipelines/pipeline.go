package pipelines

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/evalml/evalml/internal/objectives"
	"github.com/evalml/evalml/internal/problemtypes"
	"gonum.org/v1/gonum/mat"
)

// ErrNoProbabilities is returned by PredictProba when the estimator cannot
// produce class probabilities.
var ErrNoProbabilities = errors.New("estimator does not predict probabilities")

// Config describes a pipeline. Objective defaults to the problem type's
// default objective and ImputeStrategy to mean.
type Config struct {
	ProblemType    problemtypes.ProblemType
	Objective      *objectives.Objective
	ImputeStrategy string
	Estimator      Estimator
	RandomState    int64
	Logger         *slog.Logger
}

// Pipeline imputes missing values and then runs a single estimator.
type Pipeline struct {
	problemType problemtypes.ProblemType
	objective   *objectives.Objective
	imputer     *SimpleImputer
	estimator   Estimator
	randomState int64
	logger      *slog.Logger
	fitted      bool
}

// New validates cfg and builds an unfitted pipeline.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Estimator == nil {
		return nil, errors.New("pipeline: an estimator is required")
	}
	if cfg.ProblemType == "" {
		return nil, errors.New("pipeline: a problem type is required")
	}
	obj := cfg.Objective
	if obj == nil {
		obj = objectives.Default(cfg.ProblemType)
	}
	if !obj.SupportsProblemType(cfg.ProblemType) {
		return nil, fmt.Errorf("pipeline: objective %s does not support problem type %s", obj.Name, cfg.ProblemType)
	}
	if cfg.ProblemType.IsClassification() {
		if _, ok := cfg.Estimator.(ProbabilisticEstimator); !ok && obj.ScoreNeedsProba {
			return nil, fmt.Errorf("pipeline: objective %s needs probabilities but %s cannot produce them", obj.Name, cfg.Estimator.Name())
		}
	}
	imputer, err := NewSimpleImputer(cfg.ImputeStrategy)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		problemType: cfg.ProblemType,
		objective:   obj,
		imputer:     imputer,
		estimator:   cfg.Estimator,
		randomState: cfg.RandomState,
		logger:      logger,
	}, nil
}

// Name describes the pipeline by its estimator.
func (p *Pipeline) Name() string {
	return p.estimator.Name() + " w/ Simple Imputer"
}

// ProblemType returns the configured problem type.
func (p *Pipeline) ProblemType() problemtypes.ProblemType { return p.problemType }

// Objective returns the primary objective.
func (p *Pipeline) Objective() *objectives.Objective { return p.objective }

// Parameters returns the imputer strategy, the random state and the
// estimator's own parameters in one map.
func (p *Pipeline) Parameters() map[string]any {
	params := map[string]any{
		"impute_strategy": p.imputer.Strategy(),
		"random_state":    p.randomState,
	}
	if g, ok := p.estimator.(ParameterGetter); ok {
		maps.Copy(params, g.Parameters())
	}
	return params
}

// Fit trains the imputer and the estimator on X and y.
func (p *Pipeline) Fit(X mat.Matrix, y mat.Vector) error {
	filled, err := p.imputer.FitTransform(X)
	if err != nil {
		return err
	}
	if err := p.estimator.Fit(filled, y); err != nil {
		return err
	}
	rows, cols := X.Dims()
	p.logger.Debug("pipeline fitted", "pipeline", p.Name(), "rows", rows, "features", cols)
	p.fitted = true
	return nil
}

// Predict returns hard predictions for X.
func (p *Pipeline) Predict(X mat.Matrix) (*mat.VecDense, error) {
	filled, err := p.transform(X)
	if err != nil {
		return nil, err
	}
	return p.estimator.Predict(filled)
}

// PredictProba returns class probabilities, one column per class.
func (p *Pipeline) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	pe, ok := p.estimator.(ProbabilisticEstimator)
	if !ok {
		return nil, fmt.Errorf("%s: %w", p.estimator.Name(), ErrNoProbabilities)
	}
	filled, err := p.transform(X)
	if err != nil {
		return nil, err
	}
	return pe.PredictProba(filled)
}

// Score evaluates the primary objective and every objective in others on X
// and y. The returned map is keyed by objective name.
func (p *Pipeline) Score(X mat.Matrix, y mat.Vector, others ...*objectives.Objective) (float64, map[string]float64, error) {
	var (
		predicted mat.Matrix
		proba     mat.Matrix
	)
	score := func(obj *objectives.Objective) (float64, error) {
		if obj.ScoreNeedsProba {
			if proba == nil {
				pp, err := p.probaForScoring(X)
				if err != nil {
					return 0, err
				}
				proba = pp
			}
			return obj.Score(proba, y)
		}
		if predicted == nil {
			pred, err := p.Predict(X)
			if err != nil {
				return 0, err
			}
			predicted = pred
		}
		return obj.Score(predicted, y)
	}

	primary, err := score(p.objective)
	if err != nil {
		return 0, nil, err
	}
	extra := make(map[string]float64, len(others))
	for _, obj := range others {
		s, err := score(obj)
		if err != nil {
			return 0, nil, err
		}
		extra[obj.Name] = s
	}
	return primary, extra, nil
}

// probaForScoring narrows binary probabilities to the positive class column.
func (p *Pipeline) probaForScoring(X mat.Matrix) (mat.Matrix, error) {
	proba, err := p.PredictProba(X)
	if err != nil {
		return nil, err
	}
	r, c := proba.Dims()
	if p.problemType.Base() == problemtypes.Binary && c == 2 {
		return proba.Slice(0, r, 1, 2), nil
	}
	return proba, nil
}

// FeatureImportances returns one importance value per input feature.
func (p *Pipeline) FeatureImportances() ([]float64, error) {
	fi, ok := p.estimator.(FeatureImporter)
	if !ok {
		return nil, fmt.Errorf("%s does not report feature importances", p.estimator.Name())
	}
	return fi.FeatureImportances()
}

func (p *Pipeline) transform(X mat.Matrix) (*mat.Dense, error) {
	if !p.fitted {
		return nil, fmt.Errorf("pipeline: %w", ErrNotFitted)
	}
	return p.imputer.Transform(X)
}
