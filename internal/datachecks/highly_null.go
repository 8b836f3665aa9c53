package datachecks

import (
	"fmt"

	"github.com/evalml/evalml/internal/dataset"
)

// DefaultPctNullThreshold is the null fraction at which a column is flagged.
const DefaultPctNullThreshold = 0.95

// HighlyNullDataCheck warns about columns whose fraction of null values meets
// the threshold.
type HighlyNullDataCheck struct {
	pctNullThreshold float64
}

var _ DataCheck = (*HighlyNullDataCheck)(nil)

// NewHighlyNullDataCheck creates the check. A threshold of 0 flags any column
// containing at least one null.
func NewHighlyNullDataCheck(pctNullThreshold float64) (*HighlyNullDataCheck, error) {
	if err := checkThreshold("pct_null_threshold", pctNullThreshold); err != nil {
		return nil, err
	}
	return &HighlyNullDataCheck{pctNullThreshold: pctNullThreshold}, nil
}

func (*HighlyNullDataCheck) Name() string { return "HighlyNullDataCheck" }

func (c *HighlyNullDataCheck) Validate(X *dataset.Frame, _ *dataset.Column) ([]Message, error) {
	if X == nil {
		return nil, errNoFeatures
	}
	if X.Len() == 0 {
		return nil, nil
	}

	var messages []Message
	rows := float64(X.Len())
	for _, col := range X.Columns() {
		pctNull := float64(col.NullCount()) / rows
		if c.pctNullThreshold == 0 {
			if pctNull > 0 {
				messages = append(messages, NewWarning(fmt.Sprintf("Column '%s' is more than 0%% null", col.Name), c.Name()))
			}
			continue
		}
		if pctNull >= c.pctNullThreshold {
			msg := fmt.Sprintf("Column '%s' is %s%% or more null", col.Name, formatPercent(c.pctNullThreshold*100))
			messages = append(messages, NewWarning(msg, c.Name()))
		}
	}
	return messages, nil
}
