package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// nullTokens are cell values read as missing.
var nullTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// LoadCSV reads a CSV file into a frame. The first row is treated as headers
// (column names). Files ending in .gz or .zst are decompressed transparently.
func LoadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	r, closeFn, err := decompress(path, f)
	if err != nil {
		return nil, fmt.Errorf("csv: decompress %s: %w", path, err)
	}
	defer closeFn()

	frame, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}
	return frame, nil
}

// LoadCSVRange reads rows in the given range [start, end] (1-based, inclusive).
// Row 1 is the first data row (after headers).
func LoadCSVRange(path string, start, end int) (*Frame, error) {
	if start < 1 {
		return nil, fmt.Errorf("csv: range start must be >= 1, got %d", start)
	}
	if end < start {
		return nil, fmt.Errorf("csv: range end (%d) must be >= start (%d)", end, start)
	}

	frame, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return frame.Slice(start-1, end), nil
}

func decompress(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gz, func() { _ = gz.Close() }, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	default:
		return r, func() {}, nil
	}
}

// ReadCSV parses CSV content with a header row, inferring each column's type:
// all non-null cells parsing as booleans give a boolean column, all parsing as
// numbers give a numeric column, anything else stays string.
func ReadCSV(r io.Reader) (*Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty (no header row)")
	}

	headers := records[0]
	body := records[1:]
	columns := make([]*Column, len(headers))
	for j, h := range headers {
		cells := make([]string, len(body))
		for i, record := range body {
			if len(record) != len(headers) {
				return nil, fmt.Errorf("row %d has %d columns, expected %d", i+2, len(record), len(headers))
			}
			cells[i] = record[j]
		}
		columns[j] = parseColumn(strings.TrimSpace(h), cells)
	}
	return NewFrame(columns...)
}

func parseColumn(name string, cells []string) *Column {
	values := make([]any, len(cells))

	if parsed, ok := parseAll(cells, parseBool); ok {
		copy(values, parsed)
		return NewColumn(name, values...)
	}
	if parsed, ok := parseAll(cells, parseFloat); ok {
		copy(values, parsed)
		return NewColumn(name, values...)
	}
	for i, cell := range cells {
		if !isNullToken(cell) {
			values[i] = cell
		}
	}
	return NewColumn(name, values...)
}

func parseAll(cells []string, parse func(string) (any, bool)) ([]any, bool) {
	out := make([]any, len(cells))
	for i, cell := range cells {
		if isNullToken(cell) {
			continue
		}
		v, ok := parse(strings.TrimSpace(cell))
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseBool(s string) (any, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return nil, false
}

func parseFloat(s string) (any, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

func isNullToken(cell string) bool {
	return nullTokens[strings.ToLower(strings.TrimSpace(cell))]
}
