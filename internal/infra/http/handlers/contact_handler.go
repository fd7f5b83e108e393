package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/carretel-crm/internal/entity"
	"github.com/xavierca1/carretel-crm/internal/infra/http/middleware"
	"github.com/xavierca1/carretel-crm/internal/usecase"
)

type ContactHandler struct {
	Repo *usecase.Repository
	Now  func() time.Time
}

func NewContactHandler(repo *usecase.Repository) *ContactHandler {
	return &ContactHandler{Repo: repo, Now: time.Now}
}

// List (GET /contacts)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Contacts())
}

// Get (GET /contacts/{id})
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	contact, ok := h.Repo.Contact(id)
	if !ok {
		writeDomainError(w, usecase.NewNotFoundError("contato", id))
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// Create (POST /contacts). Campos ausentes ficam com o padrão do formulário.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft := entity.NewContactDraft(h.Now())
	if err := decodeJSON(r, &draft); err != nil {
		writeDomainError(w, err)
		return
	}

	data, err := draft.Build()
	if err != nil {
		writeDomainError(w, usecase.NewValidationError(err))
		return
	}

	contact := h.Repo.AddContact(r.Context(), data)
	middleware.RecordMutation("contact", "create")
	writeJSON(w, http.StatusCreated, contact)
}

// Update (PUT /contacts/{id}). O corpo é mesclado sobre o registro atual.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	current, ok := h.Repo.Contact(id)
	if !ok {
		writeDomainError(w, usecase.NewNotFoundError("contato", id))
		return
	}

	draft := entity.ContactDraftFrom(current)
	if err := decodeJSON(r, &draft); err != nil {
		writeDomainError(w, err)
		return
	}

	data, err := draft.Build()
	if err != nil {
		writeDomainError(w, usecase.NewValidationError(err))
		return
	}

	updated := entity.Contact{ID: id, ContactData: data}
	if !h.Repo.UpdateContact(r.Context(), id, updated) {
		writeDomainError(w, usecase.NewNotFoundError("contato", id))
		return
	}
	middleware.RecordMutation("contact", "update")
	writeJSON(w, http.StatusOK, updated)
}

// Delete (DELETE /contacts/{id}) também remove as oportunidades do contato.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.Repo.DeleteContact(r.Context(), id) {
		writeDomainError(w, usecase.NewNotFoundError("contato", id))
		return
	}
	middleware.RecordMutation("contact", "delete")
	w.WriteHeader(http.StatusNoContent)
}
