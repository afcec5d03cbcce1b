package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nulzo/aimind/internal/app"
	"github.com/nulzo/aimind/internal/config"
	"github.com/nulzo/aimind/internal/platform/logger"
	"github.com/nulzo/aimind/internal/platform/otel"
	"github.com/nulzo/aimind/internal/server"
	"github.com/nulzo/aimind/internal/version"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logger.Initialize(logCfg)
	defer logger.Sync()
	log := logger.Get()

	if cfg.Tracing.Enabled {
		shutdown, err := otel.InitTracer(cfg.Tracing.ServiceName, version.Version, log, os.Stderr)
		if err != nil {
			log.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if cfg.Updates.Check {
		go checkForUpdates(cfg.Updates.URL, log)
	}

	a, err := app.Bootstrap(cfg, log)
	if err != nil {
		log.Fatal("Failed to bootstrap", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	srv := server.New(cfg, log, a.Service, version.Version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server stopped", zap.Error(err))
		}
		return
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func checkForUpdates(url string, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := version.NewChecker(url).Check(ctx, version.Version)
	if err != nil {
		log.Debug("Update check failed", zap.Error(err))
		return
	}
	if res.Outdated {
		log.Warn("A newer version is available",
			zap.String("current", res.Current),
			zap.String("latest", res.Latest),
		)
	}
}
