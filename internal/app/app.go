package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ampliy/ampliy/internal/config"
	"github.com/ampliy/ampliy/internal/database"
	"github.com/ampliy/ampliy/internal/kv"
	"github.com/ampliy/ampliy/internal/rest"
	"github.com/ampliy/ampliy/pkg/schedule"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg     config.Application
	router  *mux.Router
	srv     *http.Server
	deps    *Dependencies
	closers []func()
}

// NewApplication constructs the full HTTP application from ./config/application.yaml, ready to Run().
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}
	return NewApplicationWithConfig(ctx, cfg)
}

func NewApplicationWithConfig(ctx context.Context, cfg config.Application, opts ...schedule.StoreOption) (*Application, error) {
	a := &Application{cfg: cfg}

	settings, err := schedule.NewSettings(cfg.Schedule)
	if err != nil {
		return nil, err
	}

	var db *pgxpool.Pool
	if cfg.Api.Enabled && cfg.Catalog.Source == "database" {
		db, err = openDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
	}

	store, err := openKV(ctx, cfg.KV)
	if err != nil {
		a.close()
		return nil, err
	}
	if redisStore, ok := store.(*kv.Redis); ok {
		a.closers = append(a.closers, func() {
			if err := redisStore.Close(); err != nil {
				log.Warnf("failed to close redis: %v", err)
			}
		})
	}

	deps, err := BuildDependencies(cfg, settings, db, store, opts...)
	if err != nil {
		a.close()
		return nil, err
	}
	a.deps = deps

	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)

	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler(cfg.Frontend.Dir, "index.html")
		r.PathPrefix("/").Handler(frontend)
	}
	a.router = r

	a.srv = &http.Server{
		Handler:      corsMiddleware(cfg.Host, r),
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

func openDatabase(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	if err := database.Migrate(cfg); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog database: %w", err)
	}
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("connected to catalog database %s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Name)
	return db, nil
}

func openKV(ctx context.Context, cfg config.KV) (kv.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return kv.NewMemory(), nil
	case "redis":
		store, err := kv.NewRedis(ctx, cfg.RedisUrl, "ampliy:")
		if err != nil {
			return nil, err
		}
		log.Info("workshops state stored in redis")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown kv backend %q", cfg.Backend)
	}
}

// Handler returns the root HTTP handler, CORS included.
func (a *Application) Handler() http.Handler {
	return a.srv.Handler
}

// Run starts the session janitor and the HTTP server and blocks until ctx is done,
// then shuts everything down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if err := a.deps.ScheduleJanitor.Start(); err != nil {
		a.close()
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-serveErr:
		runErr = err
	}

	a.deps.ScheduleJanitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
		if runErr == nil {
			runErr = err
		}
	}

	a.deps.ScheduleStore.Close()
	a.close()
	return runErr
}

func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
