package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestROCAUCScore(t *testing.T) {
	tests := []struct {
		name   string
		yTrue  []float64
		yScore []float64
		want   float64
	}{
		{"perfect", []float64{0, 0, 1, 1}, []float64{0.1, 0.2, 0.8, 0.9}, 1},
		{"reversed", []float64{0, 0, 1, 1}, []float64{0.9, 0.8, 0.2, 0.1}, 0},
		{"classic example", []float64{0, 0, 1, 1}, []float64{0.1, 0.4, 0.35, 0.8}, 0.75},
		{"all tied", []float64{0, 1, 0, 1}, []float64{0.5, 0.5, 0.5, 0.5}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ROCAUCScore(tt.yTrue, tt.yScore)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestROCAUCScoreErrors(t *testing.T) {
	_, err := ROCAUCScore([]float64{1, 1}, []float64{0.2, 0.3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one class")

	_, err = ROCAUCScore([]float64{0, 1, 2}, []float64{0.2, 0.3, 0.4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binarize")
}

func TestLabelBinarize(t *testing.T) {
	got, err := LabelBinarize([]float64{2, 0, 1, 2}, []float64{0, 1, 2})
	require.NoError(t, err)
	want := mat.NewDense(4, 3, []float64{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	assert.True(t, mat.Equal(want, got))

	bin, err := LabelBinarize([]float64{3, 7, 7}, []float64{3, 7})
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 1, []float64{0, 1, 1}), bin))

	_, err = LabelBinarize([]float64{1}, []float64{1})
	require.Error(t, err)
}

func TestMultilabelROCAUCScore(t *testing.T) {
	yTrue := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	})
	perfect := mat.NewDense(4, 3, []float64{
		0.8, 0.1, 0.1,
		0.1, 0.8, 0.1,
		0.1, 0.1, 0.8,
		0.7, 0.2, 0.1,
	})

	for _, avg := range []Average{AverageMicro, AverageMacro, AverageWeighted} {
		t.Run(string(avg), func(t *testing.T) {
			got, err := MultilabelROCAUCScore(yTrue, perfect, avg)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, got, epsilon)
		})
	}

	_, err := MultilabelROCAUCScore(yTrue, mat.NewDense(4, 2, nil), AverageMacro)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = MultilabelROCAUCScore(yTrue, perfect, AverageBinary)
	require.Error(t, err)
}

func TestMultilabelWeightedDiffersFromMacro(t *testing.T) {
	yTrue := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	scores := mat.NewDense(4, 3, []float64{
		0.9, 0.05, 0.05,
		0.2, 0.3, 0.5,
		0.1, 0.8, 0.1,
		0.6, 0.1, 0.3,
	})
	// column 0: positives {0.9,0.2}, negatives {0.1,0.6} -> 3/4
	// column 1: positive 0.8 beats all -> 1; column 2: positive 0.3 vs {0.05,0.5,0.1} -> 2/3
	macro, err := MultilabelROCAUCScore(yTrue, scores, AverageMacro)
	require.NoError(t, err)
	assert.InDelta(t, (0.75+1+2.0/3)/3, macro, epsilon)

	weighted, err := MultilabelROCAUCScore(yTrue, scores, AverageWeighted)
	require.NoError(t, err)
	assert.InDelta(t, (2*0.75+1+2.0/3)/4, weighted, epsilon)
}

func TestLogLoss(t *testing.T) {
	binary := mat.NewDense(4, 1, []float64{0.9, 0.1, 0.8, 0.35})
	got, err := LogLoss([]float64{1, 0, 1, 0}, binary)
	require.NoError(t, err)
	want := -(logOf(0.9) + logOf(0.9) + logOf(0.8) + logOf(0.65)) / 4
	assert.InDelta(t, want, got, epsilon)

	multi := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	perfect, err := LogLoss([]float64{0, 1, 2}, multi)
	require.NoError(t, err)
	assert.Less(t, perfect, 1e-12)

	_, err = LogLoss([]float64{0, 0}, mat.NewDense(2, 1, []float64{0.1, 0.2}))
	require.Error(t, err)

	_, err = LogLoss([]float64{0, 1, 2}, mat.NewDense(3, 2, nil))
	require.Error(t, err)

	_, err = LogLoss([]float64{0, 1}, mat.NewDense(3, 1, nil))
	require.ErrorIs(t, err, ErrShapeMismatch)
}
