package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const epsilon = 1e-9

func TestPrecisionRecallF1Binary(t *testing.T) {
	yTrue := []float64{0, 1, 1, 0, 1, 1}
	yPred := []float64{0, 1, 0, 1, 1, 1}
	// tp=3 fp=1 fn=1

	p, err := PrecisionScore(yTrue, yPred, AverageBinary)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, p, epsilon)

	r, err := RecallScore(yTrue, yPred, AverageBinary)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, r, epsilon)

	f, err := F1Score(yTrue, yPred, AverageBinary)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, f, epsilon)
}

func TestBinaryPerfectPrediction(t *testing.T) {
	y := []float64{0, 1, 1, 0, 1}

	f, err := F1Score(y, y, AverageBinary)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	p, err := PrecisionScore(y, y, AverageBinary)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
}

func TestBinaryErrors(t *testing.T) {
	_, err := F1Score([]float64{0, 1, 2}, []float64{0, 1, 2}, AverageBinary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiclass")

	_, err = F1Score([]float64{0, 2}, []float64{0, 2}, AverageBinary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive label")

	_, err = F1Score([]float64{0, 1}, []float64{0}, AverageBinary)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = F1Score(nil, nil, AverageBinary)
	require.Error(t, err)

	_, err = F1Score([]float64{0, 1}, []float64{0, 1}, "samples")
	require.Error(t, err)
}

func TestBinaryNoPositiveLabelPresent(t *testing.T) {
	f, err := F1Score([]float64{0, 0}, []float64{0, 0}, AverageBinary)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)
}

func TestMulticlassAverages(t *testing.T) {
	yTrue := []float64{0, 1, 2, 0, 1, 2}
	yPred := []float64{0, 2, 1, 0, 0, 1}
	// label 0: tp=2 fp=1 fn=0 support=2 -> p=2/3 r=1 f=0.8
	// label 1: tp=0 fp=2 fn=2 support=2 -> 0
	// label 2: tp=0 fp=1 fn=2 support=2 -> 0

	tests := []struct {
		name string
		avg  Average
		f1   float64
		prec float64
	}{
		{"micro", AverageMicro, 2.0 / 6.0, 2.0 / 6.0},
		{"macro", AverageMacro, 0.8 / 3, (2.0 / 3) / 3},
		{"weighted", AverageWeighted, 0.8 / 3, (2.0 / 3) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := F1Score(yTrue, yPred, tt.avg)
			require.NoError(t, err)
			assert.InDelta(t, tt.f1, f, epsilon)

			p, err := PrecisionScore(yTrue, yPred, tt.avg)
			require.NoError(t, err)
			assert.InDelta(t, tt.prec, p, epsilon)
		})
	}
}

func TestWeightedUsesSupport(t *testing.T) {
	yTrue := []float64{0, 0, 0, 1}
	yPred := []float64{0, 0, 0, 0}
	// label 0: tp=3 fp=1 -> f1 = 6/7, support 3; label 1: f1 = 0, support 1
	f, err := F1Score(yTrue, yPred, AverageWeighted)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/4*6.0/7, f, epsilon)
}

func TestMatthewsCorrCoef(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{"perfect", []float64{0, 1, 1, 0}, []float64{0, 1, 1, 0}, 1},
		{"inverted", []float64{0, 1, 1, 0}, []float64{1, 0, 0, 1}, -1},
		{"constant prediction", []float64{0, 1, 1, 0}, []float64{1, 1, 1, 1}, 0},
		{"multiclass perfect", []float64{0, 1, 2}, []float64{0, 1, 2}, 1},
		{"binary mixed", []float64{1, 1, 1, 0}, []float64{1, 0, 1, 1}, -1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatthewsCorrCoef(tt.yTrue, tt.yPred)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestRejectsNaNAndInfinity(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name   string
		metric func() (float64, error)
	}{
		{"f1 micro nan truth", func() (float64, error) {
			return F1Score([]float64{0, 1, 2, nan}, []float64{0, 1, 2, 0}, AverageMicro)
		}},
		{"f1 macro nan truth", func() (float64, error) {
			return F1Score([]float64{0, 1, 2, nan}, []float64{0, 1, 2, 0}, AverageMacro)
		}},
		{"f1 micro nan in both", func() (float64, error) {
			return F1Score([]float64{0, 1, nan}, []float64{0, 1, nan}, AverageMicro)
		}},
		{"precision nan prediction", func() (float64, error) {
			return PrecisionScore([]float64{0, 1, 1}, []float64{0, nan, 1}, AverageBinary)
		}},
		{"recall nan truth", func() (float64, error) {
			return RecallScore([]float64{nan, 1, 1}, []float64{0, 1, 1}, AverageWeighted)
		}},
		{"mcc nan truth", func() (float64, error) {
			return MatthewsCorrCoef([]float64{0, 1, 2, nan}, []float64{0, 1, 2, 0})
		}},
		{"r2 infinite prediction", func() (float64, error) {
			return R2Score([]float64{1, 2, 3}, []float64{1, inf, 3})
		}},
		{"auc nan score", func() (float64, error) {
			return ROCAUCScore([]float64{0, 1, 0, 1}, []float64{0.1, nan, 0.3, 0.9})
		}},
		{"auc nan truth", func() (float64, error) {
			return ROCAUCScore([]float64{0, 1, nan, 1}, []float64{0.1, 0.2, 0.3, 0.9})
		}},
		{"log loss nan truth", func() (float64, error) {
			return LogLoss([]float64{0, 1, nan}, mat.NewDense(3, 1, []float64{0.1, 0.9, 0.5}))
		}},
		{"log loss nan probability", func() (float64, error) {
			return LogLoss([]float64{0, 1, 1}, mat.NewDense(3, 1, []float64{0.1, nan, 0.5}))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.metric()
			require.ErrorIs(t, err, ErrNaNInput)
		})
	}

	_, err := LabelBinarize([]float64{0, 1, nan}, []float64{0, 1, 2})
	require.ErrorIs(t, err, ErrNaNInput)
}
