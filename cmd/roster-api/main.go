// main is the entry point of the Roster API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the configured storage engine (SQLite, PostgreSQL or memory)
//  4. Build the request dispatcher (aborts on a misconfigured handler table)
//  5. Register all HTTP routes and start the server in a goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/roster-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/roster-api
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/roster-api/internal/app"
	"github.com/aanand-mishra/roster-api/internal/config"
	"github.com/aanand-mishra/roster-api/internal/http/router"
	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/storage/memory"
	"github.com/aanand-mishra/roster-api/internal/storage/postgres"
	"github.com/aanand-mishra/roster-api/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)

	log.Info("starting roster-api",
		slog.String("env", cfg.Env),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// Handlers only ever see the two Storage Port interfaces; which engine
	// sits behind them is decided here and nowhere else.
	store, closeStore, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	log.Info("storage initialised", slog.String("driver", cfg.Storage.Driver))

	// ── 4. Build the Dispatcher ───────────────────────────────────────────
	// A duplicate or missing handler is a programming error; refuse to
	// serve anything rather than fail on the first request of that kind.
	dispatcher, err := app.NewDispatcher(store, store, log)
	if err != nil {
		log.Error("invalid request handler configuration", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}

	kinds := make([]string, 0, len(dispatcher.Kinds()))
	for _, k := range dispatcher.Kinds() {
		kinds = append(kinds, string(k))
	}
	log.Info("dispatcher ready", slog.Any("kinds", kinds))

	// ── 5. Create and Start the HTTP Server ───────────────────────────────
	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router.New(dispatcher, cfg.HTTPServer, log),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed when Shutdown() is
		// called. That's expected — we don't want to log it as an error.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			closeStore()
			os.Exit(1)
		}
	}()

	// ── 6. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped gracefully")
}

// repository is satisfied by every engine: one value serves both ports.
type repository interface {
	storage.StudentRepository
	storage.TeamRepository
}

// openStorage returns the engine selected by cfg.Storage.Driver and a
// function releasing it. The close function is safe to call more than once.
func openStorage(cfg *config.Config) (repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, closeOnce(s.Close), nil

	case config.DriverPostgres:
		p, err := postgres.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, closeOnce(p.Close), nil

	case config.DriverMemory:
		return memory.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func closeOnce(closeFn func() error) func() {
	closed := false
	return func() {
		if !closed {
			closed = true
			_ = closeFn()
		}
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default: // "dev" and anything unrecognised
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
