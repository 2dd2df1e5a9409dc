// Package main - Entry point for the unit conversion API server
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"unit-converter/api"
	"unit-converter/internal/config"
	"unit-converter/internal/logging"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "unitconv-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgFile := pflag.StringP("config", "c", "", "config file (.json, .yaml, .toml or .hcl)")
	addr := pflag.String("addr", "", "listen address (overrides server.addr)")
	pflag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	logger := logging.With(zap.String("component", "api"))
	apiServer, err := api.NewServer(api.Options{
		Version:     version,
		MetricsPath: cfg.Server.MetricsPath,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("could not create api server: %w", err)
	}
	httpServer := apiServer.HTTPServer(cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("metrics", cfg.Server.MetricsPath),
			zap.String("version", version))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logging.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Warn("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
