package objectives

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evalml/evalml/internal/problemtypes"
)

// ErrUnknownObjective is returned when no objective matches a lookup.
var ErrUnknownObjective = errors.New("unknown objective")

var constructors = []func() *Objective{
	F1,
	F1Micro,
	F1Macro,
	F1Weighted,
	Precision,
	PrecisionMicro,
	PrecisionMacro,
	PrecisionWeighted,
	Recall,
	RecallMicro,
	RecallMacro,
	RecallWeighted,
	AUC,
	AUCMicro,
	AUCMacro,
	AUCWeighted,
	LogLoss,
	MCC,
	R2,
}

// All returns every registered objective in catalogue order.
func All() []*Objective {
	out := make([]*Objective, 0, len(constructors))
	for _, c := range constructors {
		out = append(out, c())
	}
	return out
}

// ForProblemType returns the objectives applicable to pt, in catalogue order.
func ForProblemType(pt problemtypes.ProblemType) []*Objective {
	var out []*Objective
	for _, o := range All() {
		if o.SupportsProblemType(pt) {
			out = append(out, o)
		}
	}
	return out
}

// Get resolves an objective by name (case-insensitive) within a problem type.
// Names are only unique per problem type: "Recall" and "AUC" each name one
// binary and one multiclass objective.
func Get(name string, pt problemtypes.ProblemType) (*Objective, error) {
	want := strings.TrimSpace(name)
	for _, o := range ForProblemType(pt) {
		if strings.EqualFold(o.Name, want) {
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w %q for problem type %s", ErrUnknownObjective, name, pt)
}

// Names returns the distinct objective names in catalogue order.
func Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, o := range All() {
		if !seen[o.Name] {
			seen[o.Name] = true
			names = append(names, o.Name)
		}
	}
	return names
}

// Default returns the objective used when none is configured for pt.
func Default(pt problemtypes.ProblemType) *Objective {
	switch pt.Base() {
	case problemtypes.Binary:
		return F1()
	case problemtypes.Multiclass:
		return F1Micro()
	default:
		return R2()
	}
}
