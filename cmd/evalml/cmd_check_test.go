package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommandDefaultChecks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	out, err := runCLI(t, dir, "check", "data.csv", "--target", "y")

	var failure *DataCheckFailureError
	require.True(t, errors.As(err, &failure), "expected DataCheckFailureError, got %v", err)
	assert.Equal(t, "data checks reported errors in 1 file", failure.Error())

	assert.Contains(t, out, "data.csv (5 rows, 6 columns)")
	assert.Contains(t, out, "Column 'all_null' is 95.0% or more null")
	assert.Contains(t, out, "Column 'also_all_null' is 95.0% or more null")
	assert.Contains(t, out, "Column 'id' is 100.0% or more likely to be an ID column")
	assert.Contains(t, out, "Column 'has_label_leakage' is 95.0% or more correlated with the target")
	assert.Contains(t, out, "ERROR    InvalidTargetDataCheck  1 row(s) (20.0%) of target values are null")
	assert.Contains(t, out, "Summary: 1 file, 4 warnings, 1 error")

	// messages keep check order
	assert.Less(t, strings.Index(out, "HighlyNullDataCheck"), strings.Index(out, "IDColumnsDataCheck"))
	assert.Less(t, strings.Index(out, "LabelLeakageDataCheck"), strings.Index(out, "InvalidTargetDataCheck"))
}

func TestCheckCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	out, err := runCLI(t, dir, "check", "data.csv", "--target", "y", "--format", "json")
	require.Error(t, err)

	// the failure message goes to the same buffer after the report
	jsonPart := out[:strings.LastIndex(out, "}")+1]
	var report checkJSONReport
	require.NoError(t, json.Unmarshal([]byte(jsonPart), &report))

	_, parseErr := uuid.Parse(report.RunID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "y", report.Target)
	require.Len(t, report.Files, 1)
	msgs := report.Files[0].Messages
	require.Len(t, msgs, 5)
	assert.Equal(t, "InvalidTargetDataCheck", msgs[4].DataCheckName)
	assert.Equal(t, "error", string(msgs[4].Type))
	assert.Equal(t, 5, report.Files[0].Rows)
	assert.Equal(t, 6, report.Files[0].Columns, "target is not counted as a feature")
}

func TestCheckCommandCleanFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.csv", cleanCSV)

	out, err := runCLI(t, dir, "check", "clean.csv", "--target", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "no issues found")
	assert.Contains(t, out, "Summary: 1 file, 0 warnings, 0 errors")
}

func TestCheckCommandMultipleFilesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{"c.csv", "a.csv", "b.csv", "data.csv"}
	for _, f := range files[:3] {
		writeFile(t, dir, f, cleanCSV)
	}
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	out, err := runCLI(t, dir, append([]string{"check", "--target", "y", "--workers", "3"}, files...)...)
	require.Error(t, err)

	last := -1
	for _, f := range files {
		idx := strings.Index(out, f+" (")
		require.Greater(t, idx, last, "%s out of order in:\n%s", f, out)
		last = idx
	}
	assert.Contains(t, out, "Summary: 4 files, 4 warnings, 1 error")
}

func TestCheckCommandConfiguredChecks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".evalml.yaml", `
data_checks:
  - name: highly_null
    params:
      pct_null_threshold: 0.5
defaults:
  format: json
`)
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	out, err := runCLI(t, dir, "check", "data.csv", "--target", "y")
	require.NoError(t, err)

	var report checkJSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 1)
	msgs := report.Files[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "Column 'lots_of_null' is 50.0% or more null", msgs[0].Message)
}

func TestCheckCommandMetricsTextfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", defaultChecksCSV)
	prom := filepath.Join(dir, "evalml.prom")

	_, err := runCLI(t, dir, "check", "data.csv", "--target", "y", "--metrics-textfile", prom)
	require.Error(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `evalml_data_check_messages_total{check="HighlyNullDataCheck",type="warning"} 2`)
	assert.Contains(t, string(data), `evalml_datasets_checked_total{result="failed"} 1`)
}

func TestCheckCommandRuntimeErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing target column", []string{"check", "data.csv", "--target", "label"}, `target column "label" not found`},
		{"missing file", []string{"check", "nope.csv", "--target", "y"}, "nope.csv"},
		{"bad format", []string{"check", "data.csv", "--target", "y", "--format", "xml"}, `invalid format "xml"`},
		{"bad workers", []string{"check", "data.csv", "--target", "y", "--workers", "0"}, "invalid workers 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, dir, tt.args...)
			require.Error(t, err)
			var failure *DataCheckFailureError
			assert.False(t, errors.As(err, &failure))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckCommandRequiresTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", cleanCSV)
	_, err := runCLI(t, dir, "check", "data.csv")
	require.ErrorContains(t, err, `required flag(s) "target" not set`)
}

func TestCheckCommandRowRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	// rows 1-2 have no null target
	out, err := runCLI(t, dir, "check", "data.csv", "--target", "y", "--rows", "1-2")
	require.NoError(t, err)
	assert.Contains(t, out, "data.csv (2 rows, 6 columns)")
	assert.NotContains(t, out, "of target values are null")

	for _, rows := range []string{"two", "1-2x", "1x-2", "3", "-", "1-"} {
		t.Run(rows, func(t *testing.T) {
			_, err := runCLI(t, dir, "check", "data.csv", "--target", "y", "--rows", rows)
			require.ErrorContains(t, err, fmt.Sprintf("invalid rows %q", rows))
		})
	}
}
