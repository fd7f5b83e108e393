package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/xavierca1/carretel-crm/internal/usecase"
)

type DashboardHandler struct {
	Repo *usecase.Repository
	Now  func() time.Time
}

func NewDashboardHandler(repo *usecase.Repository) *DashboardHandler {
	return &DashboardHandler{Repo: repo, Now: time.Now}
}

// Dashboard (GET /dashboard)
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.Repo.Snapshot()
	writeJSON(w, http.StatusOK, usecase.BuildDashboard(snap.Contacts, snap.Opportunities))
}

// Calendar (GET /calendar?year=2024&month=5). Sem parâmetros usa o mês atual.
func (h *DashboardHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := h.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 || y > 9999 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_QUERY", "year inválido")
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_QUERY", "month deve ser 1-12")
			return
		}
		month = m
	}

	writeJSON(w, http.StatusOK, usecase.BuildCalendarMonth(h.Repo.Opportunities(), year, time.Month(month)))
}

// Upcoming (GET /calendar/upcoming?limit=3). limit=0 devolve tudo.
func (h *DashboardHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 0 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_QUERY", "limit inválido")
			return
		}
		limit = l
	}

	snap := h.Repo.Snapshot()
	upcoming := usecase.Upcoming(snap.Opportunities, h.Now())
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	writeJSON(w, http.StatusOK, viewsOf(snap.Contacts, upcoming))
}
