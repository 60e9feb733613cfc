package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"bloodalert/internal/http/handlers"
	"bloodalert/internal/infra"
	"bloodalert/internal/middleware"
)

// NewRouter wires the API surface under /api.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(app.JWTSecret))

			r.Get("/me", app.Me)

			r.Route("/alerts", func(r chi.Router) {
				r.Post("/", app.AlertsCreate)
				r.Get("/", app.AlertsList)
				r.Get("/{id}", app.AlertsGet)
				r.Post("/{id}/respond", app.AlertRespond)
				r.Get("/{id}/responses", app.AlertResponses)
			})

			r.Get("/dashboard/stats", app.DashboardStats)
			r.Get("/mock-emails", app.MockEmails)
		})
	})

	return r
}
