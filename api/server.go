/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for browser clients

ROUTE GROUPS:
  /api/conventions   Convention catalog
  /api/fractions     Ad-hoc fractions
  /api/schedules     Ad-hoc schedules
  /api/bases/*       Stored bases and per-basis calculations
  /api/healthz       Liveness

SECURITY NOTE:
  No authentication middleware. The API is read-mostly and computes
  pure functions; only /api/bases writes state.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. An empty
// allowedOrigins list disables cross-origin access.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.Health)
		r.Get("/conventions", h.ListConventions)
		r.Post("/fractions", h.CalculateFraction)
		r.Post("/schedules", h.CalculateSchedule)

		// Basis routes
		r.Route("/bases", func(r chi.Router) {
			r.Get("/", h.ListBases)
			r.Post("/", h.CreateBasis)
			r.Post("/presets", h.LoadPresets)
			r.Get("/{id}", h.GetBasis)
			r.Delete("/{id}", h.DeleteBasis)
			r.Post("/{id}/fractions", h.BasisFraction)
			r.Post("/{id}/schedules", h.BasisSchedule)
		})
	})

	return r
}
