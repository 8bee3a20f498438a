package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("referencia a un recurso inexistente")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// AppError error uniforme que viaja hasta la capa HTTP: mensaje de negocio,
// status HTTP equivalente y la causa original como detalle.
// El detalle solo se expone en la respuesta cuando APP_ENV=development.
type AppError struct {
	Message    string
	StatusCode int
	Err        error // causa original (detalle)
}

// NewAppError construye un AppError envolviendo la causa.
func NewAppError(message string, statusCode int, err error) *AppError {
	return &AppError{Message: message, StatusCode: statusCode, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap permite errors.Is / errors.As sobre la causa.
func (e *AppError) Unwrap() error { return e.Err }

// Detail devuelve el mensaje de la causa, o cadena vacía si no hay causa.
func (e *AppError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
