package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
)

// RouterOptions tunes the router.
type RouterOptions struct {
	// Version is reported by /health.
	Version string
	// AllowPublicClients disables the private-subnet restriction.
	AllowPublicClients bool
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(deps *domain.AppDependencies, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	if !opts.AllowPublicClients {
		r.Use(PrivateSubnetOnly)
	}
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewHandler(deps, opts.Version)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/query", h.Query)
		r.Post("/command", h.Command)

		r.Get("/datausage", h.DataUsage)

		r.Get("/connection", h.Connection)
		r.Post("/connection/{action}", h.ConnectionAction)

		r.Get("/auth", h.Auth)
		r.Post("/auth", h.Login)

		r.Delete("/cache", h.ClearCache)
	})

	r.Get("/health", h.CheckHealth)

	return r
}
