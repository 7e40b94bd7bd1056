package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-relay/internal/audit"
	"github.com/BruksfildServices01/appointment-relay/internal/config"
	"github.com/BruksfildServices01/appointment-relay/internal/logging"
	"github.com/BruksfildServices01/appointment-relay/internal/notify/telegram"
	"github.com/BruksfildServices01/appointment-relay/internal/routes"
)

func main() {

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("main: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auditDispatcher := audit.NewDispatcher(audit.New(logger))
	telegramSource := config.EnvTelegramSource{}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Logger:   logger,
		Sink:     telegram.NewClient(cfg.TelegramAPIBaseURL, cfg.RelayTimeout),
		Telegram: telegramSource,
		Audit:    auditDispatcher,
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.Env),
	)
	if telegramSource.Telegram().Complete() {
		logger.Info("telegram configuration is valid")
	} else {
		logger.Warn("telegram configuration is missing, bookings will be refused",
			zap.String("required", config.EnvTelegramBotToken+", "+config.EnvTelegramChatID),
		)
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RelayTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	auditDispatcher.Close()

	logger.Info("server stopped")
}
