package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError_Message(t *testing.T) {
	err := &ExitError{Code: ExitCommandError, Message: "initialize storage"}
	assert.Equal(t, "initialize storage", err.Error())
}

func TestExitError_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapExitError(ExitCommandError, "initialize storage", cause)

	assert.Equal(t, "initialize storage: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(&ExitError{Code: ExitCommandError}))
	assert.Equal(t, ExitSuccess, GetExitCode(&ExitError{Code: ExitSuccess}))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))
}

func TestGetExitCode_Wrapped(t *testing.T) {
	inner := WrapExitError(ExitCommandError, "load configuration", errors.New("no such file"))
	outer := fmt.Errorf("startup: %w", inner)
	assert.Equal(t, ExitCommandError, GetExitCode(outer))
}
