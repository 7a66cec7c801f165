package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/auth"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/config"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/postgres"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/redis"
	postgresrepo "github.com/soft-boni/admin-panel-venue-proximity/internal/repository/postgres"
	redisrepo "github.com/soft-boni/admin-panel-venue-proximity/internal/repository/redis"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/admin"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/dashboard"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/session"
	httpgin "github.com/soft-boni/admin-panel-venue-proximity/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	actions    *redisrepo.ActionsPubSub
	registry   *auth.Registry
	closers    []func()
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	ds, err := a.loadFixtures(ctx)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}
	logger.Info("fixtures loaded",
		slog.String("source", cfg.Fixture.Source),
		slog.Int("venues", len(ds.Venues)),
		slog.Int("users", len(ds.Users)),
		slog.Int("ads", len(ds.Ads)),
	)

	var (
		flags session.FlagStore = session.NewMemoryStore()
		cache *redisrepo.Cache
		pub   admin.Publisher
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redis.New(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })

		flags = redisrepo.NewFlagStore(rdb, cfg.Redis.FlagTTL)
		cache = redisrepo.New(rdb)
		a.actions = redisrepo.NewActionsPubSub(rdb)
		pub = a.actions
	} else {
		logger.Warn("REDIS_ADDR not set: session flags kept in memory, dashboard not cached")
	}

	ref, err := auth.NewReference(cfg.Auth.Email, cfg.Auth.Password, cfg.Auth.Code, cfg.Auth.BcryptCost)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to build sign-in reference: %w", err)
	}

	a.registry = auth.NewRegistry(ref, flags, cfg.Auth.SessionTTL)

	services := service.NewServices(
		ds,
		a.registry,
		auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
		cache,
		pub,
		service.Config{Dashboard: dashboard.Config{CacheTTL: cfg.Dashboard.CacheTTL}},
		logger,
	)

	router := httpgin.NewRouter(services, logger)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return a, nil
}

func (a *App) loadFixtures(ctx context.Context) (*fixture.Dataset, error) {
	src, err := fixture.NewSource(a.cfg.Fixture.Source, func() (fixture.Source, error) {
		pgCfg := postgres.Config{
			User:     a.cfg.Postgres.User,
			Password: a.cfg.Postgres.Password,
			Name:     a.cfg.Postgres.Name,
			Host:     a.cfg.Postgres.Host,
			Port:     a.cfg.Postgres.Port,
			SSLMode:  a.cfg.Postgres.SSLMode,
		}

		if a.cfg.Postgres.Migrate {
			if err := postgres.Migrate(pgCfg, a.logger); err != nil {
				return nil, err
			}
		}

		pool, err := postgres.New(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)

		store := postgresrepo.NewStore(pool)
		return fixture.SourceFunc(func(ctx context.Context) (*fixture.Dataset, error) {
			var ds *fixture.Dataset
			err := store.ReadFixtures(ctx, func(ctx context.Context, r *postgresrepo.FixtureRepo) error {
				var err error
				ds, err = fixture.NewPostgres(r).Load(ctx)
				return err
			})
			return ds, err
		}), nil
	})
	if err != nil {
		return nil, err
	}

	return fixture.Load(ctx, src)
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	defer a.close()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Audit trail of acknowledged actions
	if a.actions != nil {
		g.Go(func() error {
			err := a.actions.Subscribe(gCtx, func(_ context.Context, ack domain.Ack, at time.Time) {
				a.logger.Info("action", slog.String("action", ack.Action), slog.String("message", ack.Message), slog.Time("at", at))
			})
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, goredis.ErrClosed) {
				return fmt.Errorf("actions subscriber: %w", err)
			}
			return nil
		})
	}

	// Drop abandoned sign-in flows
	g.Go(func() error {
		err := a.registry.RunSweeper(gCtx, a.cfg.Auth.SweepInterval, func(removed int) {
			a.logger.Debug("sign-in flows expired", slog.Int("removed", removed))
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("sign-in sweeper: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
