package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/carretel-crm/internal/infra/http/middleware"
)

type Handlers struct {
	Contacts      *ContactHandler
	Opportunities *OpportunityHandler
	Dashboard     *DashboardHandler
	Insights      *InsightHandler
	Health        *HealthHandler
}

// NewRouter monta as rotas das quatro telas (dashboard, contatos,
// oportunidades, agenda) mais insights, health e métricas.
func NewRouter(allowedOrigins []string, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.Contacts.List)
		r.Post("/", h.Contacts.Create)
		r.Get("/{id}", h.Contacts.Get)
		r.Put("/{id}", h.Contacts.Update)
		r.Delete("/{id}", h.Contacts.Delete)
	})

	r.Route("/opportunities", func(r chi.Router) {
		r.Get("/", h.Opportunities.List)
		r.Post("/", h.Opportunities.Create)
		r.Get("/{id}", h.Opportunities.Get)
		r.Put("/{id}", h.Opportunities.Update)
		r.Delete("/{id}", h.Opportunities.Delete)
	})

	r.Get("/dashboard", h.Dashboard.Dashboard)
	r.Get("/calendar", h.Dashboard.Calendar)
	r.Get("/calendar/upcoming", h.Dashboard.Upcoming)

	r.Post("/insights", h.Insights.Request)
	r.Get("/insights", h.Insights.State)

	return r
}
