package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the tally command.
const (
	ExitSuccess      = 0 // Clean shutdown
	ExitFailure      = 1 // Runtime failure inside the loop
	ExitCommandError = 2 // Bad flags, bad config, storage init failure
)

// ExitError carries a specific exit code out of the command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure when the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
