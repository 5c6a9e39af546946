package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vikions/opipolix-builder-dashboard/internal/bootstrap"
	"github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob"
	"github.com/vikions/opipolix-builder-dashboard/pkg/config"
	"github.com/vikions/opipolix-builder-dashboard/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Load configuration; missing builder credentials abort here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer l.Sync()

	// Initialize signed CLOB client - returns interface
	clobClient, err := clob.NewClient(cfg.Clob, cfg.Builder)
	if err != nil {
		l.Error(err)
		os.Exit(1)
	}

	// Reachability check; the API may rate-limit cold pings, so a failure is
	// a warning rather than fatal
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := clobClient.Ping(pingCtx); err != nil {
		l.Warn("clob api ping failed", logger.NewField("error", err.Error()))
	}
	cancelPing()

	b := bootstrap.Bootstrap{}
	b.Init(bootstrap.BootstrapConfig{
		Clob:       clobClient,
		ClobConfig: cfg.Clob,
		App:        cfg.App,
		Logger:     l,
	})

	l.Info("builder dashboard started",
		logger.NewField("app", cfg.App.Name),
		logger.NewField("environment", cfg.App.Environment),
		logger.NewField("http_port", cfg.App.Port),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- b.API.Server.Start()
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			l.Error(err)
			os.Exit(1)
		}
	case <-quit:
	}

	l.Info("Shutting down builder dashboard...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := b.API.Server.Shutdown(shutdownCtx); err != nil {
		l.Error(err)
	}

	l.Info("builder dashboard stopped")
}
