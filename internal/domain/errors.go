package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrStoreIO       = errors.New("error de acceso al almacén de registros")
)

// ValidationError señala un campo concreto con entrada inválida.
// Unwrap devuelve ErrInvalidInput para que errors.Is siga funcionando.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError con mensaje por campo.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StoreError envuelve un fallo del colaborador tabular (hoja de cálculo, DB).
// La operación completa es segura de reintentar: no queda estado local parcial.
type StoreError struct {
	Op  string // operación que falló: "read_all", "append", "update"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("almacén: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return ErrStoreIO }

// NewStoreError construye un StoreError.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
