package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio. Es un conjunto cerrado: la capa HTTP
// traduce cada Kind a un status code y cualquier otro error termina en 500.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Error error de dominio con su clasificación y un mensaje legible para el cliente.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is compara por Kind, así errors.Is(err, ErrNotFound) funciona con cualquier mensaje.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Errores de dominio base (comparar con errors.Is).
var (
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "recurso no encontrado"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "conflicto con el estado actual"}
	ErrInvalidInput = &Error{Kind: KindInvalid, Message: "entrada inválida"}
)

// NotFound crea un error KindNotFound con mensaje formateado.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict crea un error KindConflict con mensaje formateado.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Invalid crea un error KindInvalid con mensaje formateado.
func Invalid(format string, args ...any) error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}
