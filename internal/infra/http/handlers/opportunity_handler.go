package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/carretel-crm/internal/entity"
	"github.com/xavierca1/carretel-crm/internal/infra/http/middleware"
	"github.com/xavierca1/carretel-crm/internal/usecase"
)

// OpportunityView é a oportunidade com o nome do contato já resolvido.
type OpportunityView struct {
	entity.Opportunity
	ContactName string `json:"contactName"`
}

type OpportunityHandler struct {
	Repo *usecase.Repository
	Now  func() time.Time
}

func NewOpportunityHandler(repo *usecase.Repository) *OpportunityHandler {
	return &OpportunityHandler{Repo: repo, Now: time.Now}
}

func viewsOf(contacts []entity.Contact, opps []entity.Opportunity) []OpportunityView {
	views := make([]OpportunityView, 0, len(opps))
	for _, o := range opps {
		views = append(views, OpportunityView{Opportunity: o, ContactName: usecase.ContactName(contacts, o.ContactID)})
	}
	return views
}

// List (GET /opportunities)
func (h *OpportunityHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.Repo.Snapshot()
	writeJSON(w, http.StatusOK, viewsOf(snap.Contacts, snap.Opportunities))
}

// Get (GET /opportunities/{id})
func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap := h.Repo.Snapshot()
	for _, o := range snap.Opportunities {
		if o.ID == id {
			writeJSON(w, http.StatusOK, OpportunityView{Opportunity: o, ContactName: usecase.ContactName(snap.Contacts, o.ContactID)})
			return
		}
	}
	writeDomainError(w, usecase.NewNotFoundError("oportunidade", id))
}

// Create (POST /opportunities). O contato precisa existir no momento da criação.
func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft := entity.NewOpportunityDraft(h.Now())
	if err := decodeJSON(r, &draft); err != nil {
		writeDomainError(w, err)
		return
	}

	data, err := draft.Build()
	if err != nil {
		writeDomainError(w, usecase.NewValidationError(err))
		return
	}
	if _, ok := h.Repo.Contact(data.ContactID); !ok {
		writeDomainError(w, usecase.NewValidationError(entity.ValidationErrors{
			{Field: "contactId", Message: "contact not found"},
		}))
		return
	}

	opp := h.Repo.AddOpportunity(r.Context(), data)
	middleware.RecordMutation("opportunity", "create")
	writeJSON(w, http.StatusCreated, opp)
}

// Update (PUT /opportunities/{id}). O corpo é mesclado sobre o registro atual;
// um contactId órfão já gravado continua aceito.
func (h *OpportunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	current, ok := h.Repo.Opportunity(id)
	if !ok {
		writeDomainError(w, usecase.NewNotFoundError("oportunidade", id))
		return
	}

	draft := entity.OpportunityDraftFrom(current)
	if err := decodeJSON(r, &draft); err != nil {
		writeDomainError(w, err)
		return
	}

	data, err := draft.Build()
	if err != nil {
		writeDomainError(w, usecase.NewValidationError(err))
		return
	}
	if data.ContactID != current.ContactID {
		if _, ok := h.Repo.Contact(data.ContactID); !ok {
			writeDomainError(w, usecase.NewValidationError(entity.ValidationErrors{
				{Field: "contactId", Message: "contact not found"},
			}))
			return
		}
	}

	updated := entity.Opportunity{ID: id, OpportunityData: data}
	if !h.Repo.UpdateOpportunity(r.Context(), id, updated) {
		writeDomainError(w, usecase.NewNotFoundError("oportunidade", id))
		return
	}
	middleware.RecordMutation("opportunity", "update")
	writeJSON(w, http.StatusOK, updated)
}

// Delete (DELETE /opportunities/{id})
func (h *OpportunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.Repo.DeleteOpportunity(r.Context(), id) {
		writeDomainError(w, usecase.NewNotFoundError("oportunidade", id))
		return
	}
	middleware.RecordMutation("opportunity", "delete")
	w.WriteHeader(http.StatusNoContent)
}
