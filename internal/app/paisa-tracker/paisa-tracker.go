// Package paisatracker собирает приложение: хранилище состояния,
// сервисы и HTTP-сервер с graceful shutdown.
package paisatracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/mehtaarjun/paisa-tracker/internal/config"
	"github.com/mehtaarjun/paisa-tracker/internal/llm"
	"github.com/mehtaarjun/paisa-tracker/internal/services/insights"
	"github.com/mehtaarjun/paisa-tracker/internal/services/tracker"
	"github.com/mehtaarjun/paisa-tracker/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StoragePath, logger)
	if err != nil {
		return nil, err
	}

	trackerService := tracker.New(ctx, db, logger)

	var summarizer insights.Summarizer
	if cfg.Insights.APIKey != "" {
		summarizer = llm.NewGemini(cfg.Insights.APIKey, cfg.Insights.Model, cfg.Insights.TimeoutLLM)
	} else {
		logger.Warn("GEMINI_API_KEY is not set, insights generation is unavailable")
	}
	insightsService := insights.New(logger, summarizer)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, trackerService, insightsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.Close()
		return err
	}
}
