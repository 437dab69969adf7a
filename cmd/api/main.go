package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "digipet/internal/adapters/storage/postgres"
	"digipet/internal/adapters/storage/sqlite"
	"digipet/internal/config"
	"digipet/internal/domain/events"
	"digipet/internal/platform/logger"
	"digipet/internal/router"
)

// @title Digipet API
// @version 1.0
// @description Mascota virtual con tres stats acotadas (happiness, nutrition, discipline).
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(cfg.LoggerOptions())

	eventRepo, db, err := openJournal(cfg, log)
	if err != nil {
		log.Error("journal error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		Logger:       log,
		Events:       eventRepo,
		HatchOnStart: cfg.HatchOnStart,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openJournal elige el backend del journal: Postgres, SQLite o memoria (nil).
func openJournal(cfg config.Config, log logger.Logger) (events.Repository, *sql.DB, error) {
	switch {
	case cfg.DatabaseDSN != "":
		db, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info("journal backend", map[string]any{"backend": "postgres"})
		return pg.NewEventsRepo(db), db, nil
	case cfg.SQLitePath != "":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("journal backend", map[string]any{"backend": "sqlite", "path": cfg.SQLitePath})
		return sqlite.NewEventsRepo(db), db, nil
	default:
		log.Info("journal backend", map[string]any{"backend": "memory"})
		return nil, nil, nil
	}
}
