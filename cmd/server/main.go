package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"messagelog/internal/application"
	"messagelog/internal/cache"
	"messagelog/internal/config"
	"messagelog/internal/handlers"
	"messagelog/internal/observability"
	"messagelog/internal/repository/postgres"
	"messagelog/internal/router"
)

func main() {
	cfg := config.Load()

	observability.InitLogger(cfg.AppName)
	log := observability.Log
	defer log.Sync()

	repo, err := postgres.New(cfg.PostgresDSN())
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer repo.DB.Close()

	// Degraded start: schema init failure is logged, not fatal. The
	// service comes up and individual requests fail until the store
	// recovers.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.InitSchema(initCtx); err != nil {
		log.Error("schema init failed, starting degraded", zap.Error(err))
	}
	cancelInit()

	cacheClient := cache.New(cfg.RedisAddr())
	defer cacheClient.Client.Close()

	svc := application.New(repo, cacheClient, log)

	statusH := handlers.NewStatusHandler(svc, cfg.AppName)
	msgH := handlers.NewMessageHandler(svc)
	statsH := handlers.NewStatsHandler(svc)

	r := router.New(statusH, msgH, statsH, cfg.AppName)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		log.Info("server started", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	log.Info("shutdown complete")
}
