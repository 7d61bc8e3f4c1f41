package calc

import (
	"errors"
	"fmt"
)

// InvalidOperandsError indicates a Calculation was constructed without
// operands.
type InvalidOperandsError struct{}

func (e *InvalidOperandsError) Error() string {
	return "at least one operand must be provided"
}

// DivisionByZeroError indicates a divide operation received a zero divisor.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// UnknownOperationError indicates an operation name that does not resolve
// to any built-in operation.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("operation not found: %s", e.Name)
}

// IsInvalidOperands returns true if the error is an InvalidOperandsError.
// Uses errors.As to handle wrapped errors.
func IsInvalidOperands(err error) bool {
	var e *InvalidOperandsError
	return errors.As(err, &e)
}

// IsDivisionByZero returns true if the error is a DivisionByZeroError.
// Uses errors.As to handle wrapped errors.
func IsDivisionByZero(err error) bool {
	var e *DivisionByZeroError
	return errors.As(err, &e)
}

// IsUnknownOperation returns true if the error is an UnknownOperationError.
// Uses errors.As to handle wrapped errors.
func IsUnknownOperation(err error) bool {
	var e *UnknownOperationError
	return errors.As(err, &e)
}
