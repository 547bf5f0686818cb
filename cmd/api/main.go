package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gestionpagos/billing-system/internal/api"
	"github.com/gestionpagos/billing-system/internal/core/service"
	"github.com/gestionpagos/billing-system/internal/infrastructure/config"
	redisdb "github.com/gestionpagos/billing-system/internal/infrastructure/db/redis"
	"github.com/gestionpagos/billing-system/internal/infrastructure/db/sqlite"
	"github.com/gestionpagos/billing-system/internal/infrastructure/queue"
	"github.com/gestionpagos/billing-system/pkg/logger"
)

// @title Gestion de Pagos API
// @version 1.0
// @description API de gestion de clientes y trabajos con autenticacion por token.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Connect(ctx, sqlite.Config{DSN: cfg.DB.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	activityRepo := sqlite.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, activityService, cfg.SessionSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
