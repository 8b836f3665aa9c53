package objectives

import (
	"fmt"

	"github.com/evalml/evalml/internal/metrics"
	"github.com/evalml/evalml/internal/problemtypes"
	"gonum.org/v1/gonum/mat"
)

var (
	binaryOnly     = []problemtypes.ProblemType{problemtypes.Binary}
	multiclassOnly = []problemtypes.ProblemType{problemtypes.Multiclass}
	classification = []problemtypes.ProblemType{problemtypes.Binary, problemtypes.Multiclass}
	regressionOnly = []problemtypes.ProblemType{problemtypes.Regression}
)

func newObjective(name string, greaterIsBetter, needsProba bool, types []problemtypes.ProblemType, fn ScoreFunc) *Objective {
	return &Objective{
		Name:            name,
		GreaterIsBetter: greaterIsBetter,
		ScoreNeedsProba: needsProba,
		ProblemTypes:    append([]problemtypes.ProblemType(nil), types...),
		score:           fn,
	}
}

func f1(avg metrics.Average) ScoreFunc {
	return labelScore(func(yTrue, yPred []float64) (float64, error) {
		return metrics.F1Score(yTrue, yPred, avg)
	})
}

func precision(avg metrics.Average) ScoreFunc {
	return labelScore(func(yTrue, yPred []float64) (float64, error) {
		return metrics.PrecisionScore(yTrue, yPred, avg)
	})
}

// F1 is the binary F1 score of the positive class.
func F1() *Objective { return newObjective("F1", true, false, binaryOnly, f1(metrics.AverageBinary)) }

func F1Micro() *Objective {
	return newObjective("F1 Micro", true, false, multiclassOnly, f1(metrics.AverageMicro))
}

func F1Macro() *Objective {
	return newObjective("F1 Macro", true, false, multiclassOnly, f1(metrics.AverageMacro))
}

func F1Weighted() *Objective {
	return newObjective("F1 Weighted", true, false, multiclassOnly, f1(metrics.AverageWeighted))
}

// Precision is the binary precision of the positive class.
func Precision() *Objective {
	return newObjective("Precision", true, false, binaryOnly, precision(metrics.AverageBinary))
}

func PrecisionMicro() *Objective {
	return newObjective("Precision Micro", true, false, multiclassOnly, precision(metrics.AverageMicro))
}

func PrecisionMacro() *Objective {
	return newObjective("Precision Macro", true, false, multiclassOnly, precision(metrics.AverageMacro))
}

func PrecisionWeighted() *Objective {
	return newObjective("Precision Weighted", true, false, multiclassOnly, precision(metrics.AverageWeighted))
}

// Recall objectives score with the F1 computation of the same averaging, which
// is the established behaviour downstream consumers rank pipelines by.
func Recall() *Objective {
	return newObjective("Recall", true, false, binaryOnly, f1(metrics.AverageBinary))
}

func RecallMicro() *Objective {
	return newObjective("Recall Micro", true, false, multiclassOnly, f1(metrics.AverageMicro))
}

func RecallMacro() *Objective {
	return newObjective("Recall Macro", true, false, multiclassOnly, f1(metrics.AverageMacro))
}

// RecallWeighted shares the "Recall" name with the binary objective.
func RecallWeighted() *Objective {
	return newObjective("Recall", true, false, multiclassOnly, f1(metrics.AverageWeighted))
}

// AUC is the binary ROC AUC over positive class probabilities.
func AUC() *Objective {
	return newObjective("AUC", true, true, binaryOnly, func(yPredicted mat.Matrix, yTrue []float64) (float64, error) {
		scores, err := singleColumn(yPredicted)
		if err != nil {
			return 0, err
		}
		return metrics.ROCAUCScore(yTrue, scores)
	})
}

func AUCMicro() *Objective {
	return newObjective("AUC Micro", true, true, multiclassOnly, multiclassAUC(metrics.AverageMicro))
}

func AUCMacro() *Objective {
	return newObjective("AUC Macro", true, true, multiclassOnly, multiclassAUC(metrics.AverageMacro))
}

// AUCWeighted shares the "AUC" name with the binary objective.
func AUCWeighted() *Objective {
	return newObjective("AUC", true, true, multiclassOnly, multiclassAUC(metrics.AverageWeighted))
}

// multiclassAUC binarizes truth with more than two distinct values before
// computing the averaged multilabel ROC AUC.
func multiclassAUC(avg metrics.Average) ScoreFunc {
	return func(yPredicted mat.Matrix, yTrue []float64) (float64, error) {
		classes := metrics.Unique(yTrue)
		if len(classes) > 2 {
			binarized, err := metrics.LabelBinarize(yTrue, classes)
			if err != nil {
				return 0, err
			}
			return metrics.MultilabelROCAUCScore(binarized, yPredicted, avg)
		}

		scores, err := singleColumn(yPredicted)
		if err != nil {
			return 0, fmt.Errorf("truth has %d classes: %w", len(classes), err)
		}
		return metrics.ROCAUCScore(yTrue, scores)
	}
}

// LogLoss is lower-is-better and scores class probabilities.
func LogLoss() *Objective {
	return newObjective("Log Loss", false, true, classification, func(yPredicted mat.Matrix, yTrue []float64) (float64, error) {
		return metrics.LogLoss(yTrue, yPredicted)
	})
}

// MCC is the Matthews correlation coefficient.
func MCC() *Objective {
	return newObjective("MCC", true, false, classification, labelScore(metrics.MatthewsCorrCoef))
}

// R2 is the coefficient of determination.
func R2() *Objective {
	return newObjective("R2", true, false, regressionOnly, labelScore(metrics.R2Score))
}
