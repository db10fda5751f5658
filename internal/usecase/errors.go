package usecase

import (
	"errors"
	"fmt"

	"skillmatrix/internal/domain/skill"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrInternal   = errors.New("internal error")
)

// ValidationError describes one rejected input field. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

// storeError maps a store failure onto the usecase taxonomy. kind and id
// describe the entity the caller was looking for.
func storeError(err error, kind, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrInternal):
		return err
	case errors.Is(err, skill.ErrNotFound):
		return notFound(kind, id)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
