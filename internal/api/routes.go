package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/classify", h.Classify)
		r.Post("/analyze", h.Analyze)

		r.Get("/taxonomy", h.GetTaxonomy)

		r.Route("/brands", func(r chi.Router) {
			r.Get("/classifications", h.ListBrandClassifications)
			r.Route("/{name}/classification", func(r chi.Router) {
				r.Get("/", h.GetBrandClassification)
				r.Put("/", h.PutBrandClassification)
				r.Delete("/", h.DeleteBrandClassification)
			})
		})

		r.Route("/emails", func(r chi.Router) {
			r.Get("/", h.ListEmails)
			r.Get("/{id}", h.GetEmail)
		})
	})

	return r
}
