package datachecks

import (
	"fmt"
	"strings"

	"github.com/evalml/evalml/internal/dataset"
)

// DefaultIDThreshold is the likelihood at which a column is reported as an ID.
const DefaultIDThreshold = 1.0

// IDColumnsDataCheck warns about columns that look like row identifiers.
//
// A column is scored by three heuristics: being named "id", holding only
// unique values (category and datetime columns excluded), and having a name
// ending in "_id". The first matching heuristic scores 0.95 and any further
// match raises the score to 1.0.
type IDColumnsDataCheck struct {
	idThreshold float64
}

var _ DataCheck = (*IDColumnsDataCheck)(nil)

// NewIDColumnsDataCheck creates the check.
func NewIDColumnsDataCheck(idThreshold float64) (*IDColumnsDataCheck, error) {
	if err := checkThreshold("id_threshold", idThreshold); err != nil {
		return nil, err
	}
	return &IDColumnsDataCheck{idThreshold: idThreshold}, nil
}

func (*IDColumnsDataCheck) Name() string { return "IDColumnsDataCheck" }

func (c *IDColumnsDataCheck) Validate(X *dataset.Frame, _ *dataset.Column) ([]Message, error) {
	if X == nil {
		return nil, errNoFeatures
	}

	scores := newOrderedScores()
	columns := X.Columns()

	for _, col := range columns {
		if strings.ToLower(col.Name) == "id" {
			scores.set(col.Name, 0.95)
		}
	}
	for _, col := range columns {
		if col.Type == dataset.TypeCategory || col.Type == dataset.TypeDatetime {
			continue
		}
		if col.NUnique() == X.Len() {
			scores.bump(col.Name)
		}
	}
	for _, col := range columns {
		if strings.HasSuffix(strings.ToLower(col.Name), "_id") {
			scores.bump(col.Name)
		}
	}

	var messages []Message
	for _, name := range scores.keys {
		if scores.values[name] >= c.idThreshold {
			msg := fmt.Sprintf("Column '%s' is %s%% or more likely to be an ID column", name, formatPercent(c.idThreshold*100))
			messages = append(messages, NewWarning(msg, c.Name()))
		}
	}
	return messages, nil
}

// orderedScores keeps insertion order so findings follow first detection.
type orderedScores struct {
	keys   []string
	values map[string]float64
}

func newOrderedScores() *orderedScores {
	return &orderedScores{values: make(map[string]float64)}
}

func (s *orderedScores) set(name string, v float64) {
	if _, ok := s.values[name]; !ok {
		s.keys = append(s.keys, name)
	}
	s.values[name] = v
}

// bump scores a new column 0.95 and an already flagged one 1.0.
func (s *orderedScores) bump(name string) {
	if _, ok := s.values[name]; ok {
		s.values[name] = 1.0
		return
	}
	s.set(name, 0.95)
}
