package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/router"
)

// @title Pet Registry API
// @version 1.0
// @description CRUD de mascotas y dueños, estadísticas agregadas y vista enriquecida con traducción.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	handler := router.NewRouter(router.Options{Cfg: cfg, Log: log})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	case sig := <-sigCh:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	// Le damos un plazo a los requests en vuelo antes de cortar.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
