package repo

import (
	"errors"
	"fmt"
)

// NotFoundError indicates no record with the requested ID exists.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record with ID %s not found", e.ID)
}

// EmptyStoreError indicates a read against a store holding no records.
type EmptyStoreError struct{}

func (e *EmptyStoreError) Error() string {
	return "store is empty"
}

// StoreIOError wraps an I/O failure during a named backend operation.
type StoreIOError struct {
	Op  string // "initialization", "add", "clear", "delete"
	Err error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("store I/O error during %s: %v", e.Op, e.Err)
}

func (e *StoreIOError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsEmptyStore returns true if the error is an EmptyStoreError.
// Uses errors.As to handle wrapped errors.
func IsEmptyStore(err error) bool {
	var e *EmptyStoreError
	return errors.As(err, &e)
}

// IsStoreIO returns true if the error is a StoreIOError.
// Uses errors.As to handle wrapped errors.
func IsStoreIO(err error) bool {
	var e *StoreIOError
	return errors.As(err, &e)
}
