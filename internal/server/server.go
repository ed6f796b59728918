// Package server boots the application: config, logging sink, database,
// cache, storage, store, routes. The CLI's serve command calls Start.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/devansh742005/under-the-hoodies/app/routes"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/config"
	"github.com/devansh742005/under-the-hoodies/pkg/cache"
	"github.com/devansh742005/under-the-hoodies/pkg/database"
	"github.com/devansh742005/under-the-hoodies/pkg/logger"
	"github.com/devansh742005/under-the-hoodies/pkg/router"
	"github.com/devansh742005/under-the-hoodies/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start boots every subsystem and serves until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if uri := config.LogMongoURI(); uri != "" {
		if err := logger.EnableMongoSink(uri, config.LogMongoDatabase(), config.LogMongoCollection()); err != nil {
			logger.Warn("mongo log sink unavailable", "error", err.Error())
		}
		defer logger.CloseMongoSink()
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: connect database: %w", err)
	}

	if err := cache.Connect(); err != nil {
		// The catalog works without Redis, just uncached.
		logger.Warn("cache unavailable, serving uncached", "error", err.Error())
	}

	storage.Connect()

	r := router.New()
	routes.Register(r, store.NewGorm(database.DB))

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
