package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/carretel-crm/internal/entity"
	"github.com/xavierca1/carretel-crm/internal/usecase"
)

type errorResponse struct {
	Error   string                   `json:"error"`
	Message string                   `json:"message"`
	Fields  []entity.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func writeDomainError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if !errors.As(err, &de) {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	status := http.StatusBadRequest
	switch de.Code {
	case usecase.CodeValidation:
		status = http.StatusUnprocessableEntity
	case usecase.CodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: de.Code, Message: de.Message, Fields: de.Fields})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &usecase.DomainError{Code: usecase.CodeInvalidJSON, Message: "JSON inválido: " + err.Error()}
	}
	return nil
}
