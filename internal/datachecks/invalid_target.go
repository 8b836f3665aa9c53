package datachecks

import (
	"fmt"

	"github.com/evalml/evalml/internal/dataset"
)

// InvalidTargetDataCheck reports an error when target values are missing.
type InvalidTargetDataCheck struct{}

var _ DataCheck = (*InvalidTargetDataCheck)(nil)

func (*InvalidTargetDataCheck) Name() string { return "InvalidTargetDataCheck" }

func (c *InvalidTargetDataCheck) Validate(_ *dataset.Frame, y *dataset.Column) ([]Message, error) {
	if y == nil {
		return nil, errNoTarget
	}
	nulls := y.NullCount()
	if nulls == 0 {
		return nil, nil
	}
	pct := float64(nulls) / float64(y.Len()) * 100
	msg := fmt.Sprintf("%d row(s) (%s%%) of target values are null", nulls, formatPercent(pct))
	return []Message{NewError(msg, c.Name())}, nil
}
