// Package dataset holds the tabular representation data checks and pipelines
// operate on: typed, nullable columns grouped into an ordered frame.
package dataset

import (
	"fmt"
	"math"
	"time"
)

// ColumnType is the logical type inferred for a column.
type ColumnType string

const (
	// TypeUnknown marks a column with no non-null values.
	TypeUnknown  ColumnType = "unknown"
	TypeNumeric  ColumnType = "numeric"
	TypeBoolean  ColumnType = "boolean"
	TypeString   ColumnType = "string"
	TypeCategory ColumnType = "category"
	TypeDatetime ColumnType = "datetime"
)

// Column is a named sequence of values. A nil value or a float NaN is null.
type Column struct {
	Name   string
	Type   ColumnType
	values []any
}

// NewColumn builds a column, normalising Go numeric types to float64 and
// inferring the column type from the non-null values.
func NewColumn(name string, values ...any) *Column {
	c := &Column{Name: name, values: make([]any, len(values))}
	for i, v := range values {
		c.values[i] = normalize(v)
	}
	c.Type = inferType(c.values)
	return c
}

// NewCategoryColumn builds a column explicitly typed as categorical.
func NewCategoryColumn(name string, values ...any) *Column {
	c := NewColumn(name, values...)
	c.Type = TypeCategory
	return c
}

// NewFloatColumn builds a numeric column; NaN entries are null.
func NewFloatColumn(name string, values []float64) *Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return NewColumn(name, vals...)
}

func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}

func inferType(values []any) ColumnType {
	t := TypeUnknown
	for _, v := range values {
		if isNull(v) {
			continue
		}
		var vt ColumnType
		switch v.(type) {
		case float64:
			vt = TypeNumeric
		case bool:
			vt = TypeBoolean
		case time.Time:
			vt = TypeDatetime
		default:
			return TypeString
		}
		if t == TypeUnknown {
			t = vt
		} else if t != vt {
			return TypeString
		}
	}
	return t
}

// Len returns the number of rows.
func (c *Column) Len() int { return len(c.values) }

// Value returns the i-th value; nil or NaN means null.
func (c *Column) Value(i int) any { return c.values[i] }

// Values returns a copy of the column's values.
func (c *Column) Values() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// IsNull reports whether the i-th value is null.
func (c *Column) IsNull(i int) bool { return isNull(c.values[i]) }

// NullCount returns how many values are null.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.values {
		if isNull(v) {
			n++
		}
	}
	return n
}

// NUnique counts the distinct non-null values.
func (c *Column) NUnique() int {
	seen := make(map[any]struct{}, len(c.values))
	for _, v := range c.values {
		if isNull(v) {
			continue
		}
		if ts, ok := v.(time.Time); ok {
			v = ts.UnixNano()
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// IsNumeric reports whether the column can be read as floats: numeric and
// boolean columns. Booleans read as 0 and 1.
func (c *Column) IsNumeric() bool {
	return c.Type == TypeNumeric || c.Type == TypeBoolean
}

// Floats returns the column as float64 values with NaN for nulls.
func (c *Column) Floats() ([]float64, error) {
	if !c.IsNumeric() {
		return nil, fmt.Errorf("column %q has type %s, not numeric", c.Name, c.Type)
	}
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		switch x := v.(type) {
		case float64:
			out[i] = x
		case bool:
			if x {
				out[i] = 1
			}
		default:
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// slice returns rows [start, end) as a new column of the same type.
func (c *Column) slice(start, end int) *Column {
	vals := make([]any, end-start)
	copy(vals, c.values[start:end])
	return &Column{Name: c.Name, Type: c.Type, values: vals}
}
