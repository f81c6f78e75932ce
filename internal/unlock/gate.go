package unlock

import (
	"context"
	"net/url"
	"time"

	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/metrics"
)

// Flag is the durable unlock flag of one visitor.
// Implementations may fail; the gate never lets those failures escape.
type Flag interface {
	IsSet(ctx context.Context) (bool, error)
	Set(ctx context.Context) error
	Clear(ctx context.Context) error
}

// ParseOverride reports whether rawQuery carries param=value.
// A query that does not parse counts as no override.
func ParseOverride(rawQuery, param, value string) bool {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	return values.Get(param) == value
}

// Evaluate decides the lock state. First match wins: persisted flag,
// developer override, elapsed target. The flag is set on the latter two.
func Evaluate(ctx context.Context, target Target, now time.Time, flag Flag, devOverride bool) State {
	if readFlag(ctx, flag) {
		return UnlockedBy(ReasonPersisted)
	}

	if devOverride {
		writeFlag(ctx, flag)
		return UnlockedBy(ReasonDeveloperOverride)
	}

	instant := target.Instant(now)
	if !now.Before(instant) {
		writeFlag(ctx, flag)
		return UnlockedBy(ReasonTimeElapsed)
	}

	return LockedFor(instant.Sub(now))
}

// Reconcile clears the persisted flag when neither the override nor the
// elapsed target justifies it. It reports whether a clear was performed.
func Reconcile(ctx context.Context, target Target, now time.Time, devOverride bool, flag Flag) bool {
	if devOverride || target.Elapsed(now) {
		return false
	}
	return clearFlag(ctx, flag)
}

func readFlag(ctx context.Context, flag Flag) bool {
	if flag == nil {
		return false
	}
	set, err := flag.IsSet(ctx)
	if err != nil {
		metrics.UnlockStorageErrors.WithLabelValues(metrics.OperationRead).Inc()
		logger.FromContext(ctx).Warn(LogMsgFlagReadFailed, "error", err)
		return false
	}
	return set
}

func writeFlag(ctx context.Context, flag Flag) {
	if flag == nil {
		return
	}
	if err := flag.Set(ctx); err != nil {
		metrics.UnlockStorageErrors.WithLabelValues(metrics.OperationWrite).Inc()
		logger.FromContext(ctx).Warn(LogMsgFlagWriteFailed, "error", err)
	}
}

func clearFlag(ctx context.Context, flag Flag) bool {
	if flag == nil {
		return false
	}
	if err := flag.Clear(ctx); err != nil {
		metrics.UnlockStorageErrors.WithLabelValues(metrics.OperationDelete).Inc()
		logger.FromContext(ctx).Warn(LogMsgFlagClearFailed, "error", err)
		return false
	}
	return true
}
