package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // No data check errors
	ExitChecksFailed = 1 // A data check reported an error-level finding
	ExitError        = 2 // Configuration or runtime error
)

// DataCheckFailureError indicates that the data was read and validated, but
// at least one data check reported an error.
type DataCheckFailureError struct {
	Message string
}

func (e *DataCheckFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var failure *DataCheckFailureError
		if errors.As(err, &failure) {
			os.Exit(ExitChecksFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
