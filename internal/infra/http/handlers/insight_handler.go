package handlers

import (
	"net/http"

	"github.com/xavierca1/carretel-crm/internal/usecase"
)

type InsightHandler struct {
	Repo        *usecase.Repository
	Board       *usecase.InsightBoard
	RateLimiter *RateLimiter
}

func NewInsightHandler(repo *usecase.Repository, board *usecase.InsightBoard, limiter *RateLimiter) *InsightHandler {
	return &InsightHandler{Repo: repo, Board: board, RateLimiter: limiter}
}

// Request (POST /insights) dispara a análise e responde 202 na hora.
// O resultado sai em GET /insights.
func (h *InsightHandler) Request(w http.ResponseWriter, r *http.Request) {
	if h.RateLimiter != nil && !h.RateLimiter.Allow(h.RateLimiter.ClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	h.Board.Request(r.Context(), h.Repo.Opportunities())
	writeJSON(w, http.StatusAccepted, h.Board.State())
}

// State (GET /insights)
func (h *InsightHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Board.State())
}
