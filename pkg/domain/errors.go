package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type notFoundError struct {
	EntityType string
	ID         uuid.UUID
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

// NewNotFoundErrorByKey is used for entities addressed by a natural key
// rather than a UUID, such as attack scenarios.
func NewNotFoundErrorByKey(entityType, key string) error {
	return &namedNotFoundError{
		EntityType: entityType,
		Key:        key,
	}
}

type namedNotFoundError struct {
	EntityType string
	Key        string
}

func (e *namedNotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.EntityType, e.Key)
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var nf *notFoundError
	if errors.As(err, &nf) {
		return true
	}
	var nnf *namedNotFoundError
	return errors.As(err, &nnf)
}

type invalidStateError struct {
	EntityType string
	ID         uuid.UUID
	State      string
	Operation  string
}

func (e *invalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s '%s' in state '%s'", e.Operation, e.EntityType, e.ID.String(), e.State)
}

func NewInvalidStateError(entityType string, id uuid.UUID, state, operation string) error {
	return &invalidStateError{
		EntityType: entityType,
		ID:         id,
		State:      state,
		Operation:  operation,
	}
}

func IsInvalidStateError(err error) bool {
	if err == nil {
		return false
	}
	var is *invalidStateError
	return errors.As(err, &is)
}
