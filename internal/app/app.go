package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"directa/cotizador/internal/app/config"
	apphttp "directa/cotizador/internal/app/http"
	"directa/cotizador/internal/app/http/handlers"
	"directa/cotizador/internal/app/session"
	"directa/cotizador/internal/domain/rates"
	"directa/cotizador/internal/infra/db/postgres"
)

func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var journal handlers.ExportJournal
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("db: %w", err)
		}
		journal = db
		log.Printf("db: export journal enabled")
	}

	rc := rates.New(cfg.RatesURL, &http.Client{Timeout: cfg.HTTPTimeout})
	store := session.NewStore(cfg.SessionTTL, cfg.MaxSessions, rc)
	go store.Run(ctx, time.Minute)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, store, journal),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
