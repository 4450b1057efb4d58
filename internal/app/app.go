// Package app wires the configuration into a runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/api"
	"github.com/thrive/wellness-api/internal/api/handler"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/core/service"
	"github.com/thrive/wellness-api/internal/infrastructure/db/file"
	"github.com/thrive/wellness-api/internal/infrastructure/db/memory"
	mongostore "github.com/thrive/wellness-api/internal/infrastructure/db/mongo"
	redisstore "github.com/thrive/wellness-api/internal/infrastructure/db/redis"
	"github.com/thrive/wellness-api/internal/pkg/config"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	echo        *echo.Echo
	addr        string
	closers     []func(context.Context) error
	stopStreams context.CancelFunc
	logger      zerolog.Logger
}

// New builds every dependency named by cfg. Connections opened along the way
// are closed again if a later step fails.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	return newApp(ctx, cfg, logger, nil)
}

// newApp is New with the HTTP metrics sent to registry, nil meaning the
// default Prometheus registry.
func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger, registry *prometheus.Registry) (_ *App, err error) {
	streams, stopStreams := context.WithCancel(context.Background())
	a := &App{addr: ":" + cfg.Port, stopStreams: stopStreams, logger: logger}
	defer func() {
		if err != nil {
			a.close(context.Background())
		}
	}()

	snapshots, err := a.openSnapshots(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := service.NewSession(ctx, snapshots, cfg.Session.Key, logger)
	if err != nil {
		return nil, err
	}
	tokens, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	catalog := memory.NewCatalog(nil)
	mockAPI := service.NewMockAPI(catalog, service.NewRandomRanker(nil), logger,
		service.WithLatencyScale(cfg.Mock.LatencyScale))

	a.echo = api.NewRouter(api.Deps{
		Sessions:     sessions,
		Tokens:       tokens,
		API:          mockAPI,
		Catalog:      catalog,
		Home:         service.NewHomeService(mockAPI, catalog, logger),
		Readiness:    []handler.Dependency{{Name: "session_store_" + cfg.Session.Backend, Pinger: snapshots}},
		JWTSecret:    cfg.JWTSecret,
		PollInterval: cfg.Mock.ChatPollInterval,
		Streams:      streams,
		Logger:       logger,
		Registry:     registry,
	})
	return a, nil
}

func (a *App) openSnapshots(ctx context.Context, cfg *config.Config) (ports.SnapshotStore, error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return memory.NewSnapshotStore(), nil
	case config.BackendRedis:
		store, err := redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	case config.BackendMongo:
		store, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return file.NewSnapshotStore(cfg.Session.Dir)
	}
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler { return a.echo }

// Run serves until ctx is done, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("address", a.addr).Msg("http server listening")
		if err := a.echo.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.close(context.Background())
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown waits for handlers but never cancels their contexts, so the
	// event streams are ended first.
	a.stopStreams()
	err := a.echo.Shutdown(shutdownCtx)
	a.close(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (a *App) close(ctx context.Context) {
	a.stopStreams()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.logger.Warn().Err(err).Msg("closing dependency failed")
		}
	}
	a.closers = nil
}
