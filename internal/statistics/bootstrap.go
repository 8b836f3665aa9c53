package statistics

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/evalml/evalml/internal/objectives"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ConfidenceInterval holds the result of a bootstrap confidence interval computation.
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Score           float64 `json:"score"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
	NumBootstraps   int     `json:"num_bootstraps"`
	Skipped         int     `json:"skipped,omitempty"`
}

// DefaultBootstrapIterations is the number of bootstrap resamples.
const DefaultBootstrapIterations = 1000

// Options tune a bootstrap run. Zero Iterations means
// DefaultBootstrapIterations; a negative Seed uses a non-deterministic source.
type Options struct {
	Level      float64
	Iterations int
	Seed       int64
}

// BootstrapScore computes a percentile confidence interval for obj over row
// resamples of yPredicted and yTrue. Resamples the objective cannot score,
// such as a single-class draw for AUC, are skipped and counted.
func BootstrapScore(obj *objectives.Objective, yPredicted mat.Matrix, yTrue mat.Vector, opts Options) (ConfidenceInterval, error) {
	n, _ := yPredicted.Dims()
	if n != yTrue.Len() {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap: %d prediction rows, %d truth values", n, yTrue.Len())
	}
	point, err := obj.Score(yPredicted, yTrue)
	if err != nil {
		return ConfidenceInterval{}, err
	}
	return run(n, point, opts, func(idx []int) (float64, error) {
		p, t := resample(yPredicted, yTrue, idx)
		return obj.Score(p, t)
	})
}

// BootstrapDifference computes a confidence interval for
// score(a) - score(b) where both prediction sets are scored on the same
// resamples. Combined with IsSignificant it tells whether a beats b.
func BootstrapDifference(obj *objectives.Objective, a, b mat.Matrix, yTrue mat.Vector, opts Options) (ConfidenceInterval, error) {
	na, _ := a.Dims()
	nb, _ := b.Dims()
	if na != yTrue.Len() || nb != yTrue.Len() {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap: prediction rows %d and %d, %d truth values", na, nb, yTrue.Len())
	}
	diff := func(a, b mat.Matrix, t mat.Vector) (float64, error) {
		sa, err := obj.Score(a, t)
		if err != nil {
			return 0, err
		}
		sb, err := obj.Score(b, t)
		if err != nil {
			return 0, err
		}
		return sa - sb, nil
	}
	point, err := diff(a, b, yTrue)
	if err != nil {
		return ConfidenceInterval{}, err
	}
	return run(na, point, opts, func(idx []int) (float64, error) {
		pa, t := resample(a, yTrue, idx)
		pb, _ := resample(b, yTrue, idx)
		return diff(pa, pb, t)
	})
}

// IsSignificant returns true if the confidence interval does not contain zero,
// indicating statistical significance at the given confidence level.
func IsSignificant(ci ConfidenceInterval) bool {
	return ci.Lower > 0 || ci.Upper < 0
}

func run(n int, point float64, opts Options, statistic func(idx []int) (float64, error)) (ConfidenceInterval, error) {
	if opts.Level <= 0 || opts.Level >= 1 {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap: confidence level must be in (0, 1), got %v", opts.Level)
	}
	iters := opts.Iterations
	if iters <= 0 {
		iters = DefaultBootstrapIterations
	}
	if n < 2 {
		return ConfidenceInterval{
			Lower:           point,
			Upper:           point,
			Score:           point,
			Mean:            point,
			ConfidenceLevel: opts.Level,
		}, nil
	}

	var rng *rand.Rand
	if opts.Seed >= 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	samples := make([]float64, 0, iters)
	idx := make([]int, n)
	skipped := 0
	for i := 0; i < iters; i++ {
		for j := range idx {
			idx[j] = rng.Intn(n)
		}
		s, err := statistic(idx)
		if err != nil || math.IsNaN(s) {
			skipped++
			continue
		}
		samples = append(samples, s)
	}
	if len(samples) == 0 {
		return ConfidenceInterval{}, errors.New("bootstrap: no resample could be scored")
	}

	sort.Float64s(samples)

	// Percentile method
	alpha := 1.0 - opts.Level
	return ConfidenceInterval{
		Lower:           stat.Quantile(alpha/2, stat.Empirical, samples, nil),
		Upper:           stat.Quantile(1-alpha/2, stat.Empirical, samples, nil),
		Score:           point,
		Mean:            stat.Mean(samples, nil),
		ConfidenceLevel: opts.Level,
		NumBootstraps:   len(samples),
		Skipped:         skipped,
	}, nil
}

// resample gathers the rows idx of m and the matching truth values.
func resample(m mat.Matrix, y mat.Vector, idx []int) (*mat.Dense, *mat.VecDense) {
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	truth := mat.NewVecDense(len(idx), nil)
	for i, r := range idx {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(r, j))
		}
		truth.SetVec(i, y.AtVec(r))
	}
	return out, truth
}
