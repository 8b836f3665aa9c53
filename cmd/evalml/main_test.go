package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDataCheckFailureError(t *testing.T) {
	err := &DataCheckFailureError{
		Message: "data checks reported errors in 2 files",
	}

	assert.Equal(t, "data checks reported errors in 2 files", err.Error())
}

func TestErrorTypeDetection(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantFailure bool
	}{
		{
			name:        "DataCheckFailureError",
			err:         &DataCheckFailureError{Message: "check failure"},
			wantFailure: true,
		},
		{
			name:        "regular error",
			err:         errors.New("config error"),
			wantFailure: false,
		},
		{
			name:        "wrapped DataCheckFailureError",
			err:         errors.Join(&DataCheckFailureError{Message: "check failure"}, errors.New("additional context")),
			wantFailure: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var failure *DataCheckFailureError
			assert.Equal(t, tt.wantFailure, errors.As(tt.err, &failure))
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"check", "objectives", "score", "evaluate"} {
		assert.Contains(t, names, want)
	}
	require.NotNil(t, root.PersistentFlags().Lookup("debug"))
}

// --- test helpers ---

// runCLI executes the root command with args in a fresh working directory
// and returns the combined output.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)
	cmd := newRootCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// defaultChecksCSV has two all-null columns, an ID column, a leaking
// feature and one null target value.
const defaultChecksCSV = `lots_of_null,all_null,also_all_null,no_null,id,has_label_leakage,y
,,,1,0,100,0
,,,2,1,200,1
,,,3,2,100,
,,,4,3,200,1
some data,,,5,4,100,0
`

const cleanCSV = `a,b,y
1,10,0.5
2,8,1.5
3,13,2.0
4,9,2.5
5,14,6.0
3,11,1.0
`
