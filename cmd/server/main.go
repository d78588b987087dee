package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	httpapi "scoreapi/internal/http"
	"scoreapi/internal/method/handler"
	"scoreapi/internal/method/metrics"
	"scoreapi/internal/method/service"
	"scoreapi/internal/platform/config"
	"scoreapi/internal/platform/httpserver"
	"scoreapi/internal/platform/logger"
	platformredis "scoreapi/internal/platform/redis"
	"scoreapi/internal/storage"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "addr", cfg.Redis.Addr, "error", err.Error())
		os.Exit(1)
	}
	defer redisClient.Close()

	store := storage.New(redisClient.Client, log)
	svc := service.New(store, log, cfg.Salt, cfg.AdminSalt)
	h := handler.New(svc, log, metrics.New(prometheus.DefaultRegisterer))
	router := httpapi.NewRouter(h, log, redisClient.Health)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting scoreapi", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
