package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/Rama-Divya/Myhero/internal/config"
	"github.com/Rama-Divya/Myhero/internal/handler"
	"github.com/Rama-Divya/Myhero/internal/scheduler"
	"github.com/Rama-Divya/Myhero/internal/server"
	"github.com/Rama-Divya/Myhero/internal/sse"
	"github.com/Rama-Divya/Myhero/internal/storage"
	"github.com/Rama-Divya/Myhero/internal/worker"
)

// App holds every long-lived component of the service
type App struct {
	Config    *config.Config
	Store     storage.Store
	Hub       *sse.Hub
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Unlock    *handler.UnlockHandler
	Deps      server.Dependencies
	Server    *server.Server
}

// StorageOptions maps the configuration onto storage.Options
func StorageOptions(cfg *config.Config) storage.Options {
	return storage.Options{
		Driver:          cfg.StorageDriver,
		DatabaseURL:     cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		SQLitePath:      cfg.SQLitePath,
		CacheSize:       cfg.FlagCacheSize,
		CacheTTL:        cfg.FlagCacheTTL,
	}
}

// Build opens the store and wires the hub, worker pool, countdown schedule
// and HTTP server. Background components are started; the HTTP server is not.
func Build(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (*App, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	target, err := cfg.UnlockTarget()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildTarget, err)
	}

	store, err := storage.Open(ctx, StorageOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	hub := sse.NewHub()
	hub.Start()

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.NewWithClock(pool, clock)
	sched.ScheduleNow(cfg.CountdownInterval, worker.NewCountdownJob(target, hub, clock))

	unlockHandler := handler.NewUnlockHandler(handler.UnlockConfig{
		Target:        target,
		FlagKey:       cfg.UnlockFlagKey,
		DevParam:      cfg.DevParam,
		DevParamValue: cfg.DevParamValue,
		FastInterval:  cfg.FastTickInterval,
		SlowInterval:  cfg.SlowTickInterval,
		Clock:         clock,
	}, store, handler.NewVisitors(cfg.VisitorCookie, cfg.CookieSecure))

	deps := server.Dependencies{
		Store:          store,
		Unlock:         unlockHandler,
		Hub:            hub,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		Clock:          clock,
		Build: handler.BuildInfo{
			Service:     cfg.ServiceName,
			Version:     cfg.Version,
			Environment: cfg.Environment,
		},
	}

	slog.Info(LogMsgComponentsReady,
		"storage_driver", cfg.StorageDriver,
		"workers", cfg.WorkerCount,
		"countdown_interval", cfg.CountdownInterval,
		"target", target.Note())

	return &App{
		Config:    cfg,
		Store:     store,
		Hub:       hub,
		Pool:      pool,
		Scheduler: sched,
		Unlock:    unlockHandler,
		Deps:      deps,
		Server:    server.NewServer(cfg.Port, deps),
	}, nil
}

// Shutdown stops every component of the app in dependency order
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:    a.Server,
		Hub:       a.Hub,
		Scheduler: a.Scheduler,
		Pool:      a.Pool,
		Store:     a.Store,
	})
}
