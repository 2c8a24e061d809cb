package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrSessionExpired     = errors.New("sesión expirada")
)

// ValidationError fallo de validación de un campo concreto.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError atajo para un único campo inválido.
func NewValidationError(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

// ValidationErrors agrega varios fallos de campo; se reportan todos a la vez.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Error())
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error { return ErrInvalidInput }

// Add registra un fallo de campo.
func (e *ValidationErrors) Add(field, reason string) {
	*e = append(*e, ValidationError{Field: field, Reason: reason})
}

// Err devuelve nil si no hay fallos acumulados.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// FieldErrors extrae los fallos de campo de err (individual o agregado).
func FieldErrors(err error) []ValidationError {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}
	var one ValidationError
	if errors.As(err, &one) {
		return []ValidationError{one}
	}
	return nil
}

// NotFoundError entidad inexistente por id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Entity, e.ID)
}

func (e NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound atajo para NotFoundError.
func NewNotFound(entity, id string) error {
	return NotFoundError{Entity: entity, ID: id}
}

// Motivos de AuthError. Se registran en logs; al cliente se le devuelve un mensaje genérico.
const (
	AuthUnknownUser     = "unknown_user"
	AuthBadPassword     = "bad_password"
	AuthInactiveUser    = "inactive_user"
	AuthInvalidToken    = "invalid_token"
	AuthSessionReplaced = "session_replaced"
)

// AuthError fallo de autenticación con motivo interno.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string {
	return "autenticación fallida: " + e.Reason
}

func (e AuthError) Unwrap() error { return ErrUnauthorized }

// ConflictError la operación no aplica al estado actual de la entidad.
type ConflictError struct {
	Entity string
	ID     string
	State  string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %q en estado %q", e.Entity, e.ID, e.State)
}

func (e ConflictError) Unwrap() error { return ErrConflict }
