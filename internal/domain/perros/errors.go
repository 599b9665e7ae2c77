package perros

import "errors"

var (
	ErrNotFound   = errors.New("perro no encontrado")
	ErrValidation = errors.New("validation error")
)

// ValidationError lleva un mensaje apto para devolver al cliente.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

