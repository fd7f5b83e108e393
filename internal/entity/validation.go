package entity

import (
	"strings"
	"time"
)

// DateLayout é o formato de todas as datas de calendário do CRM.
const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors agrupa todos os campos inválidos de um registro.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msg := "validation failed: "
	for i, e := range errs {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return msg
}

// Err devolve nil quando não há erros, para uso direto como error.
func (errs ValidationErrors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requireText(errs ValidationErrors, field, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	return errs
}

func requireDate(errs ValidationErrors, field, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	if !IsValidDate(value) {
		return append(errs, ValidationError{field, "must be a valid date (YYYY-MM-DD)"})
	}
	return errs
}

func requireUF(errs ValidationErrors, field, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	if !IsValidUF(value) {
		return append(errs, ValidationError{field, "must be a valid UF"})
	}
	return errs
}

func IsValidDate(dateStr string) bool {
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}

// FormatDate converte um instante para a data de calendário usada nos registros.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
