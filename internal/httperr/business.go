package httperr

import (
	"errors"
	"fmt"
)

// ValidationError indica campo obrigatório ausente ou vazio.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Field
}

func ErrValidation(field string) error {
	return ValidationError{Field: field}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// NotFoundError indica referência a um registro inexistente.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func ErrNotFound(entity string, id uint) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
