package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrConflict          = errors.New("conflict")
	ErrTransient         = errors.New("transient store failure")
	ErrPasswordMissMatch = errors.New("password mismatch")
)

var (
	ErrAlreadyFollowing = fmt.Errorf("already following: %w", ErrDuplicateKey)
	ErrNotFollowing     = fmt.Errorf("not following: %w", ErrConflict)
	ErrLimitExceeded    = fmt.Errorf("redeem limit exceeded: %w", ErrConflict)
)

// ValidationError ошибка входных данных с указанием поля. errors.Is(err, ErrInvalidArgument) для неё истинно.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
