package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veripay/partner-gateway/internal/api/handlers"
	"github.com/veripay/partner-gateway/internal/auth"
	"github.com/veripay/partner-gateway/internal/config"
	"github.com/veripay/partner-gateway/internal/middleware"
	"github.com/veripay/partner-gateway/internal/partner"
	"github.com/veripay/partner-gateway/internal/services"
)

func NewRouter(cfg config.Config, txnSvc *services.TransactionService, store *partner.Store, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	th := handlers.NewTransactionHandler(txnSvc, time.Now)
	oh := handlers.NewOpsHandler(tm, store, cfg)
	am := middleware.NewAuthMiddleware(tm)

	r.Route("/api", func(r chi.Router) {
		// ---------- partner-facing ----------
		r.Post("/submittrxmessage", th.Submit)
		r.Get("/ping", th.Ping)

		// ---------- operator ----------
		r.Route("/v1/ops", func(r chi.Router) {
			r.Post("/token", oh.Token)
			r.Group(func(r chi.Router) {
				r.Use(am.RequireToken)
				r.Get("/partners", oh.Partners)
			})
		})
	})

	return r
}
