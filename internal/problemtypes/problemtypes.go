// Package problemtypes enumerates the modeling tasks objectives, data checks and
// pipelines are tagged with.
package problemtypes

import (
	"fmt"
	"strings"
)

// ProblemType is the category of a supervised learning task.
type ProblemType string

const (
	Binary     ProblemType = "binary"
	Multiclass ProblemType = "multiclass"
	Regression ProblemType = "regression"

	TimeSeriesBinary     ProblemType = "time series binary"
	TimeSeriesMulticlass ProblemType = "time series multiclass"
	TimeSeriesRegression ProblemType = "time series regression"
)

var all = []ProblemType{
	Binary,
	Multiclass,
	Regression,
	TimeSeriesBinary,
	TimeSeriesMulticlass,
	TimeSeriesRegression,
}

// All returns every known problem type in declaration order.
func All() []ProblemType {
	out := make([]ProblemType, len(all))
	copy(out, all)
	return out
}

func (p ProblemType) String() string {
	return string(p)
}

// IsTimeSeries reports whether p is one of the time series variants.
func (p ProblemType) IsTimeSeries() bool {
	return strings.HasPrefix(string(p), "time series ")
}

// Base maps a time series variant onto the problem type it is scored as.
// Non time series problem types are returned unchanged.
func (p ProblemType) Base() ProblemType {
	switch p {
	case TimeSeriesBinary:
		return Binary
	case TimeSeriesMulticlass:
		return Multiclass
	case TimeSeriesRegression:
		return Regression
	default:
		return p
	}
}

// IsClassification is true for binary and multiclass tasks, time series or not.
func (p ProblemType) IsClassification() bool {
	b := p.Base()
	return b == Binary || b == Multiclass
}

// Parse converts a user supplied name into a ProblemType. Matching ignores case,
// surrounding whitespace, and treats underscores as spaces.
func Parse(s string) (ProblemType, error) {
	norm := strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(s), "_", " ")), " ")
	for _, p := range all {
		if string(p) == norm {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown problem type %q: must be one of %s", s, joinNames())
}

func joinNames() string {
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
