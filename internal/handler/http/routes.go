package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/", h.landing)
	router.Get("/partials/testimonial", h.testimonialPartial)

	router.Route("/contact", func(r chi.Router) {
		r.Post("/", h.contactSubmit)
		r.Post("/confirm", h.contactConfirm)
		r.Post("/cancel", h.contactCancel)
	})

	router.Post("/theme", h.toggleTheme)

	router.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.settings.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
		r.Get("/api/site/landing", h.landingJSON)
		// answered by the cors middleware
		r.Options("/api/site/landing", func(http.ResponseWriter, *http.Request) {})
	})

	router.Get("/version", h.getVersion)
	router.Get("/healthz", h.healthz)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
