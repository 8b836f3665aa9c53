package metrics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ROCAUCScore computes the area under the ROC curve for a binary truth vector.
// The greater of the two labels is the positive class. Tied scores receive
// their average rank, which matches trapezoidal integration of the ROC curve.
func ROCAUCScore(yTrue, yScore []float64) (float64, error) {
	if err := checkLengths(yTrue, yScore); err != nil {
		return 0, err
	}

	classes := Unique(yTrue)
	switch {
	case len(classes) < 2:
		return 0, fmt.Errorf("only one class present in truth; ROC AUC is not defined")
	case len(classes) > 2:
		return 0, fmt.Errorf("truth has %d classes; binarize it before computing ROC AUC", len(classes))
	}
	pos := classes[1]

	ranks := averageRanks(yScore)
	var nPos, nNeg, rankSum float64
	for i, v := range yTrue {
		if v == pos {
			nPos++
			rankSum += ranks[i]
		} else {
			nNeg++
		}
	}
	return (rankSum - nPos*(nPos+1)/2) / (nPos * nNeg), nil
}

// averageRanks returns 1-based ranks of values, ties sharing their mean rank.
func averageRanks(values []float64) []float64 {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	ranks := make([]float64, len(values))
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && values[order[j+1]] == values[order[i]] {
			j++
		}
		r := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = r
		}
		i = j + 1
	}
	return ranks
}

// MultilabelROCAUCScore averages binary ROC AUC over the columns of an
// indicator matrix. Micro flattens both matrices; macro and weighted score
// each column, weighted uses the column's positive count.
func MultilabelROCAUCScore(yTrue, yScore mat.Matrix, avg Average) (float64, error) {
	r, c := yTrue.Dims()
	sr, sc := yScore.Dims()
	if r != sr || c != sc {
		return 0, fmt.Errorf("%w: truth is %dx%d, scores are %dx%d", ErrShapeMismatch, r, c, sr, sc)
	}

	switch avg {
	case AverageMicro:
		flatTrue := make([]float64, 0, r*c)
		flatScore := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				flatTrue = append(flatTrue, yTrue.At(i, j))
				flatScore = append(flatScore, yScore.At(i, j))
			}
		}
		return ROCAUCScore(flatTrue, flatScore)

	case AverageMacro, AverageWeighted:
		var sum, total float64
		for j := 0; j < c; j++ {
			colTrue := mat.Col(nil, j, yTrue)
			auc, err := ROCAUCScore(colTrue, mat.Col(nil, j, yScore))
			if err != nil {
				return 0, fmt.Errorf("column %d: %w", j, err)
			}
			w := 1.0
			if avg == AverageWeighted {
				w = 0
				for _, v := range colTrue {
					w += v
				}
			}
			sum += w * auc
			total += w
		}
		if total == 0 {
			return 0, nil
		}
		return sum / total, nil

	default:
		return 0, fmt.Errorf("unsupported average %q for multilabel ROC AUC", avg)
	}
}
