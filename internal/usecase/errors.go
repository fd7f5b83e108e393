package usecase

import (
	"errors"

	"github.com/xavierca1/carretel-crm/internal/entity"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeInvalidJSON = "INVALID_JSON"
)

// DomainError é um erro de regra de negócio que pode ser mostrado ao usuário.
type DomainError struct {
	Code    string
	Message string
	Fields  []entity.ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// NewValidationError embrulha o resultado de um Build de rascunho.
func NewValidationError(err error) *DomainError {
	de := &DomainError{Code: CodeValidation, Message: err.Error()}
	var fields entity.ValidationErrors
	if errors.As(err, &fields) {
		de.Fields = fields
	}
	return de
}

func NewNotFoundError(kind, id string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: kind + " não encontrado: " + id}
}
