package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snw/walletd/internal/adapter/http/handler"
	"github.com/snw/walletd/internal/adapter/http/middleware"
	"github.com/snw/walletd/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	WalletHandler    *handler.WalletHandler
	RecordHandler    *handler.RecordHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Wallets
		r.Route("/wallet", func(r chi.Router) {
			r.Post("/", cfg.WalletHandler.ReconcileBatch)
			r.Get("/", cfg.WalletHandler.List)
			r.Get("/{user}", cfg.WalletHandler.GetBalance)
		})

		// Records
		r.Route("/records", func(r chi.Router) {
			r.Post("/", cfg.RecordHandler.Create)
			r.Get("/", cfg.RecordHandler.List)
			r.Get("/user/{user}", cfg.RecordHandler.GetByUser)
			r.Get("/{id}", cfg.RecordHandler.Get)
			r.Put("/{id}", cfg.RecordHandler.Update)
			r.Patch("/{id}", cfg.RecordHandler.PartialUpdate)
			r.Delete("/{id}", cfg.RecordHandler.Delete)
		})
	})

	return r
}
