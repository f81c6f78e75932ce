package bootstrap

import (
	"context"
	"log/slog"
)

type stopper interface {
	Stop()
}

type httpServer interface {
	Stop(ctx context.Context) error
}

type closer interface {
	Close() error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    httpServer
	Hub       stopper
	Scheduler stopper
	Pool      stopper
	Store     closer
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. SSE hub (close open event streams, ending their page sessions)
// 3. Countdown scheduler, then the worker pool it feeds
// 4. Flag store last, once nothing can read or write flags
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
// Nil components are skipped.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedStop, "error", err)
		}
	}

	stopComponent(ComponentHub, components.Hub)
	stopComponent(ComponentScheduler, components.Scheduler)
	stopComponent(ComponentPool, components.Pool)

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

func stopComponent(name string, s stopper) {
	if s == nil {
		return
	}
	s.Stop()
	slog.Debug(LogMsgComponentStopped, "component", name)
}
