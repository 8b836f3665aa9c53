package datachecks

import (
	"fmt"
	"math"

	"github.com/evalml/evalml/internal/dataset"
	"github.com/evalml/evalml/internal/metrics"
)

// DefaultPctCorrThreshold is the absolute correlation at which a feature is
// considered to leak the target.
const DefaultPctCorrThreshold = 0.95

// LabelLeakageDataCheck warns about numeric or boolean features strongly
// correlated with the target. Non-numeric targets are not checked.
type LabelLeakageDataCheck struct {
	pctCorrThreshold float64
}

var _ DataCheck = (*LabelLeakageDataCheck)(nil)

// NewLabelLeakageDataCheck creates the check.
func NewLabelLeakageDataCheck(pctCorrThreshold float64) (*LabelLeakageDataCheck, error) {
	if err := checkThreshold("pct_corr_threshold", pctCorrThreshold); err != nil {
		return nil, err
	}
	return &LabelLeakageDataCheck{pctCorrThreshold: pctCorrThreshold}, nil
}

func (*LabelLeakageDataCheck) Name() string { return "LabelLeakageDataCheck" }

func (c *LabelLeakageDataCheck) Validate(X *dataset.Frame, y *dataset.Column) ([]Message, error) {
	if X == nil {
		return nil, errNoFeatures
	}
	if y == nil {
		return nil, errNoTarget
	}
	if X.Width() == 0 || !y.IsNumeric() {
		return nil, nil
	}
	if y.Len() != X.Len() {
		return nil, fmt.Errorf("target has %d rows, features have %d", y.Len(), X.Len())
	}

	target, err := y.Floats()
	if err != nil {
		return nil, err
	}

	var messages []Message
	for _, col := range X.Columns() {
		if !col.IsNumeric() {
			continue
		}
		values, err := col.Floats()
		if err != nil {
			return nil, err
		}
		corr := math.Abs(metrics.PearsonCorrelation(target, values))
		if corr >= c.pctCorrThreshold {
			msg := fmt.Sprintf("Column '%s' is %s%% or more correlated with the target", col.Name, formatPercent(c.pctCorrThreshold*100))
			messages = append(messages, NewWarning(msg, c.Name()))
		}
	}
	return messages, nil
}
