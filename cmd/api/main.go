package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recicla-contigo/backend/config"
	authrepo "github.com/recicla-contigo/backend/internal/auth/repository"
	"github.com/recicla-contigo/backend/internal/bootstrap"
	"github.com/recicla-contigo/backend/internal/catalog"
	"github.com/recicla-contigo/backend/internal/logging"
	reportrepo "github.com/recicla-contigo/backend/internal/reports/repository"
	"github.com/recicla-contigo/backend/internal/storage/migrations"
)

const serviceName = "recicla-contigo-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrations.Run(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrations", zap.Error(err))
	}

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	cat, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		logger.Fatal("catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("version", cat.Version))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Cfg:         cfg,
		Log:         logger,
		DB:          pool,
		Users:       authrepo.NewPostgresStore(pool),
		Reports:     reportrepo.NewPostgresStore(pool),
		Catalog:     cat,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
