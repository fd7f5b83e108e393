package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Pinger é qualquer dependência que sabe dizer se está de pé.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	Store        Pinger
	AIConfigured func() bool
	StartTime    time.Time
	Version      string
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(store Pinger, aiConfigured func() bool) *HealthHandler {
	return &HealthHandler{
		Store:        store,
		AIConfigured: aiConfigured,
		StartTime:    time.Now(),
		Version:      "1.0.0",
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check Storage
	if h.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			deps["storage"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["storage"] = "healthy"
		}
	} else {
		deps["storage"] = "not configured"
	}

	// Check Gemini
	if h.AIConfigured != nil && h.AIConfigured() {
		deps["gemini"] = "configured"
	} else {
		deps["gemini"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
