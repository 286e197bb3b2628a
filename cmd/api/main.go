package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veripay/partner-gateway/internal/api"
	"github.com/veripay/partner-gateway/internal/auth"
	"github.com/veripay/partner-gateway/internal/config"
	"github.com/veripay/partner-gateway/internal/db"
	"github.com/veripay/partner-gateway/internal/logger"
	"github.com/veripay/partner-gateway/internal/metrics"
	"github.com/veripay/partner-gateway/internal/partner"
	"github.com/veripay/partner-gateway/internal/pipeline"
	"github.com/veripay/partner-gateway/internal/repository"
	"github.com/veripay/partner-gateway/internal/repository/postgres"
	"github.com/veripay/partner-gateway/internal/services"
	"github.com/veripay/partner-gateway/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := partner.Demo()
	if cfg.PartnersFile != "" {
		var err error
		store, err = partner.LoadFile(cfg.PartnersFile)
		if err != nil {
			log.Error("load partners", "err", err)
			os.Exit(1)
		}
	}
	log.Info("partner store loaded", "partners", len(store.Keys()))

	// The decision audit store is optional; without DATABASE_URL the
	// service runs fully stateless.
	var sink repository.Decisions
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if os.Getenv("APP_MIGRATE") == "true" {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}
		sink = postgres.NewDecisions(pool)
	}

	metrics.Init()

	wp := worker.NewPool(4)
	defer wp.Stop()

	pipe := pipeline.New(store, time.Now)
	txnSvc := services.NewTransactionService(pipe, sink, wp)
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, time.Hour)

	r := api.NewRouter(cfg, txnSvc, store, tm)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
