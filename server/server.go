package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/inspector"
	"github.com/jrschumacher/jwtinspect/internal/logger"
	"github.com/jrschumacher/jwtinspect/server/app"
	health "github.com/jrschumacher/jwtinspect/server/health-handlers"
)

const shutdownTimeout = 10 * time.Second

// NewHandler builds the application mux.
func NewHandler(cfg *config.Config, insp *inspector.Inspector) http.Handler {
	mux := http.NewServeMux()
	health.RegisterRoutes(mux, "", cfg)
	app.RegisterRoutes(mux, cfg, insp)
	return mux
}

// Start serves the inspector until SIGINT or SIGTERM, then shuts down
// gracefully.
func Start(cfg *config.Config) error {
	insp, err := inspector.FromConfig(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewHandler(cfg, insp),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
