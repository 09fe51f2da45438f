package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable indica falha de infraestrutura ao consultar o
	// contador externo. A chamada falha fechada: nunca vira um "allowed".
	ErrStoreUnavailable = errors.New("counter store unavailable")

	// ErrNotFound indica que o recurso consultado não existe no colaborador externo.
	ErrNotFound = errors.New("not found")
)

// ValidationError descreve uma entrada inválida com detalhe por campo.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError cria um erro de validação para um campo específico.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsValidationError extrai o detalhe de validação quando presente.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
