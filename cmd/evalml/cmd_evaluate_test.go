package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/evalml/evalml/internal/pipelines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const binaryCSV = `x,name,y
1,a,0
2,b,1
3,c,1
4,d,0
5,e,1
`

func TestEvaluateCommandRegression(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.csv", cleanCSV)

	out, err := runCLI(t, dir, "evaluate", "clean.csv", "--target", "y", "--problem-type", "regression", "--estimator", "linear")
	require.NoError(t, err)
	assert.Contains(t, out, "Linear Regressor w/ Simple Imputer")
	assert.Contains(t, out, "R2: ")
	assert.Contains(t, out, "FEATURE")
	assert.NotContains(t, out, "Data checks")
}

func TestEvaluateCommandBinaryJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "binary.csv", binaryCSV)

	out, err := runCLI(t, dir, "evaluate", "binary.csv", "--target", "y", "--problem-type", "binary",
		"--additional-objectives", "AUC,Log Loss", "--format", "json")
	require.NoError(t, err)

	var eval pipelines.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &eval))
	assert.Equal(t, "Baseline Classifier w/ Simple Imputer", eval.Pipeline)
	assert.Equal(t, "F1", eval.Objective)
	assert.InDelta(t, 0.75, eval.Score, 1e-12)
	assert.InDelta(t, 0.5, eval.OtherScores["AUC"], 1e-12)
	assert.Contains(t, eval.OtherScores, "Log Loss")
	assert.Equal(t, []string{"name"}, eval.Dropped)
	assert.Equal(t, "mode", eval.Parameters["strategy"])
}

func TestEvaluateCommandBlockedByDataChecks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", defaultChecksCSV)

	out, err := runCLI(t, dir, "evaluate", "data.csv", "--target", "y", "--problem-type", "binary")

	var failure *DataCheckFailureError
	require.True(t, errors.As(err, &failure), "expected DataCheckFailureError, got %v", err)
	assert.Contains(t, failure.Error(), "pipeline not fitted")
	assert.Contains(t, out, "Data checks")
	assert.Contains(t, out, "1 row(s) (20.0%) of target values are null")
	assert.NotContains(t, out, "Baseline Classifier")
}

func TestEvaluateCommandUsesProjectDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".evalml.yaml", `
defaults:
  problem_type: regression
  objective: R2
  impute_strategy: median
`)
	writeFile(t, dir, "clean.csv", cleanCSV)

	out, err := runCLI(t, dir, "evaluate", "clean.csv", "--target", "y", "--format", "json")
	require.NoError(t, err)

	var eval pipelines.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &eval))
	assert.Equal(t, "Baseline Regressor w/ Simple Imputer", eval.Pipeline)
	assert.Equal(t, "median", eval.Parameters["impute_strategy"])
	assert.InDelta(t, 0.0, eval.Score, 1e-12)
}

func TestEvaluateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "binary.csv", binaryCSV)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"linear on classification", []string{"--problem-type", "binary", "--estimator", "linear"}, "estimator linear does not support problem type binary"},
		{"unknown estimator", []string{"--problem-type", "binary", "--estimator", "forest"}, `unknown estimator "forest"`},
		{"bad impute strategy", []string{"--problem-type", "binary", "--impute-strategy", "zero"}, "unknown impute strategy"},
		{"unknown extra objective", []string{"--problem-type", "binary", "--additional-objectives", "R2"}, "unknown objective"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, dir, append([]string{"evaluate", "binary.csv", "--target", "y"}, tt.args...)...)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
