package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"bookmark_enricher/internal/metrics"
)

// NewRouter wires the status API, health check and Prometheus scrape
// endpoint onto one chi router.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", metrics.Handler(gatherer))

	r.Route("/api/enrichments/{bookmarkID}", func(r chi.Router) {
		r.Get("/", h.GetEnrichment)
		r.Post("/retry", h.RetryEnrichment)
	})

	return r
}
