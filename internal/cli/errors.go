package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	// ExitOK is returned on success
	ExitOK = 0
	// ExitFailure is returned when the conversion fails
	ExitFailure = 1
	// ExitUsage is returned for invalid command line usage
	ExitUsage = 2
)

// usageError marks an error caused by invalid command line usage.
type usageError struct {
	msg string
}

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func (e *usageError) Error() string {
	return e.msg
}

// ExitCode maps an error returned by Execute onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitFailure
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
}
