// Package web serves the calculator over HTTP: an HTML form that keeps
// its inputs in the URL, and a JSON API for other tools.
package web

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/MCH-512/crewsphere-sub000/internal/config"
	"github.com/MCH-512/crewsphere-sub000/internal/telemetry"
)

// Handler owns the page template and the collaborators every route needs.
type Handler struct {
	tpl      *template.Template
	defaults config.FormDefault
	metrics  *telemetry.Metrics
	version  string
	logger   zerolog.Logger
}

func New(defaults config.FormDefault, metrics *telemetry.Metrics, version string, logger zerolog.Logger) *Handler {
	return &Handler{
		tpl:      template.Must(template.New("page").Parse(pageHTML)),
		defaults: defaults,
		metrics:  metrics,
		version:  version,
		logger:   logger.With().Str("component", "web").Logger(),
	}
}

// Router builds the full route tree.
func (h *Handler) Router() http.Handler {
	r := h.newMux()

	r.Get("/", h.page)
	r.Post("/calc", h.calc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/fdp", h.apiCalculate)
		r.Get("/tables", h.apiTables)
	})

	r.Get("/healthz", h.healthz)
	r.Handle("/metrics", h.metrics.Handler())
	return r
}

// newMux returns a router with the middleware stack and no routes.
// Metrics sit outside Recoverer so recovered panics are counted as 500s.
func (h *Handler) newMux() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(h.metrics.Middleware)
	r.Use(middleware.Recoverer)
	return r
}
