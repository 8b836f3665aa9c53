package datachecks

import (
	"strconv"
	"strings"
)

// formatPercent renders a float in its shortest round-trip form, always with a
// fractional part: 95 -> "95.0", 7.000000000000001 stays as is.
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
