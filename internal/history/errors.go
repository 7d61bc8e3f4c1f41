package history

import (
	"errors"
	"fmt"
)

// CalculationNotFoundError indicates no calculation with the requested ID
// exists in the history.
type CalculationNotFoundError struct {
	ID string
}

func (e *CalculationNotFoundError) Error() string {
	return fmt.Sprintf("no calculation with ID %s found", e.ID)
}

// EmptyHistoryError indicates a read against a history holding no
// calculations.
type EmptyHistoryError struct{}

func (e *EmptyHistoryError) Error() string {
	return "history is empty"
}

// InvalidCalculationDataError indicates a stored calculation that could
// not be decoded.
type InvalidCalculationDataError struct {
	ID  string
	Err error
}

func (e *InvalidCalculationDataError) Error() string {
	return fmt.Sprintf("invalid calculation data for ID %s: %v", e.ID, e.Err)
}

func (e *InvalidCalculationDataError) Unwrap() error {
	return e.Err
}

// IsCalculationNotFound returns true if the error is a
// CalculationNotFoundError. Uses errors.As to handle wrapped errors.
func IsCalculationNotFound(err error) bool {
	var e *CalculationNotFoundError
	return errors.As(err, &e)
}

// IsEmptyHistory returns true if the error is an EmptyHistoryError.
// Uses errors.As to handle wrapped errors.
func IsEmptyHistory(err error) bool {
	var e *EmptyHistoryError
	return errors.As(err, &e)
}

// IsInvalidCalculationData returns true if the error is an
// InvalidCalculationDataError. Uses errors.As to handle wrapped errors.
func IsInvalidCalculationData(err error) bool {
	var e *InvalidCalculationDataError
	return errors.As(err, &e)
}
