package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Frame is an ordered set of equal-length columns with unique names.
type Frame struct {
	columns []*Column
	byName  map[string]int
	rows    int
}

// NewFrame groups columns into a frame. All columns must share a length and
// names must be unique.
func NewFrame(columns ...*Column) (*Frame, error) {
	f := &Frame{byName: make(map[string]int, len(columns))}
	for i, c := range columns {
		if c == nil {
			return nil, fmt.Errorf("column %d is nil", i)
		}
		if _, dup := f.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name, c.Len(), f.rows)
		}
		f.byName[c.Name] = i
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.columns) }

// Columns returns the columns in order.
func (f *Frame) Columns() []*Column {
	out := make([]*Column, len(f.columns))
	copy(out, f.columns)
	return out
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.columns[i], true
}

// Drop returns a frame without the named columns. Unknown names are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	out := &Frame{byName: make(map[string]int), rows: f.rows}
	for _, c := range f.columns {
		if skip[c.Name] {
			continue
		}
		out.byName[c.Name] = len(out.columns)
		out.columns = append(out.columns, c)
	}
	return out
}

// Split separates the target column from the features.
func (f *Frame) Split(target string) (*Frame, *Column, error) {
	y, ok := f.Column(target)
	if !ok {
		return nil, nil, fmt.Errorf("target column %q not found", target)
	}
	return f.Drop(target), y, nil
}

// Slice returns rows [start, end), clamped to the frame.
func (f *Frame) Slice(start, end int) *Frame {
	start = max(0, min(start, f.rows))
	end = max(start, min(end, f.rows))
	out := &Frame{byName: make(map[string]int, len(f.columns)), rows: end - start}
	for i, c := range f.columns {
		out.byName[c.Name] = i
		out.columns = append(out.columns, c.slice(start, end))
	}
	return out
}

// Matrix converts the frame to a rows x columns matrix with NaN for nulls.
// Every column must be numeric or boolean.
func (f *Frame) Matrix() (*mat.Dense, error) {
	if f.rows == 0 || len(f.columns) == 0 {
		return nil, errors.New("cannot build a matrix from an empty frame")
	}
	m := mat.NewDense(f.rows, len(f.columns), nil)
	for j, c := range f.columns {
		vals, err := c.Floats()
		if err != nil {
			return nil, err
		}
		m.SetCol(j, vals)
	}
	return m, nil
}
