package brace

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a read finds no rows.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input rejected before touching the store.
	ErrValidation = errors.New("validation failure")
	// ErrPersistence marks a store failure, the active transaction has been
	// rolled back when it is returned.
	ErrPersistence = errors.New("persistence failure")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func wrapPersistence(err error) error {
	if err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
