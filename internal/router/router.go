package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealerdesk/internal/config"
	"dealerdesk/internal/handler"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/model"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Lead      *handler.LeadHandler
	JobCard   *handler.JobCardHandler
	Part      *handler.PartHandler
	Customer  *handler.CustomerHandler
	Analytics *handler.AnalyticsHandler
}

// New builds the route table. Protection level is configured per route:
// the sales/service/inventory/customer CRUD surface is open, matching
// the product's current behavior, while the user routes require a
// bearer token (and the admin role for the listing).
func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimit.Handler)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/signup", h.Auth.Signup)
			auth.Post("/login", h.Auth.Login)
		})

		api.Route("/users", func(users chi.Router) {
			users.With(authMiddleware.Authenticate).Get("/me", h.User.Me)
			users.With(authMiddleware.Authenticate, authMiddleware.RequireRoles(model.RoleAdmin)).Get("/", h.User.List)
		})

		api.Get("/sales/leads", h.Lead.List)
		api.Post("/sales/leads", h.Lead.Create)
		api.Get("/service/job-cards", h.JobCard.List)
		api.Post("/service/job-cards", h.JobCard.Create)
		api.Get("/inventory/parts", h.Part.List)
		api.Post("/inventory/parts", h.Part.Create)
		api.Get("/customers", h.Customer.List)
		api.Post("/customers", h.Customer.Create)
		api.Get("/analytics/dashboard", h.Analytics.Dashboard)
	})

	return r
}
