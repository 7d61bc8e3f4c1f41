package record

import (
	"errors"
	"fmt"
)

// InvalidRecordError indicates a stored record field that cannot be parsed
// back into its Calculation form.
type InvalidRecordError struct {
	Field  string // which flat field failed
	Value  string // the offending value
	Reason string // short description of the failure
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record field %s=%q: %s", e.Field, e.Value, e.Reason)
}

// IsInvalidRecord returns true if the error is an InvalidRecordError.
// Uses errors.As to handle wrapped errors.
func IsInvalidRecord(err error) bool {
	var e *InvalidRecordError
	return errors.As(err, &e)
}
