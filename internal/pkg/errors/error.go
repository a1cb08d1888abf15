package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound     = errors.New("vehicle not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal server error")
)

// Field names a conflict can be tagged with. They match the document
// field names and the unique index keys.
const (
	FieldPlate       = "plate"
	FieldFleetNumber = "fleet_number"
	FieldVIN         = "vin"
)

// ConflictError reports a uniqueness violation tagged with the offending field.
type ConflictError struct {
	Field string
}

func NewConflict(field string) *ConflictError {
	return &ConflictError{Field: field}
}

func (e *ConflictError) Error() string {
	switch e.Field {
	case FieldPlate:
		return "vehicle with this license plate already exists"
	case FieldFleetNumber:
		return "vehicle with this fleet number already exists"
	case FieldVIN:
		return "vehicle with this VIN already exists"
	}
	return fmt.Sprintf("vehicle with this %s already exists", e.Field)
}

// AsConflict reports whether err is a uniqueness conflict and, if so,
// returns the tagged error.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
