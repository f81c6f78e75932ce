package worker

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/presenter"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

// Broadcaster fans an event out to every connected page
type Broadcaster interface {
	Broadcast(eventType domain.EventType, payload any) bool
}

// CountdownJob pushes the landing countdown to every page
type CountdownJob struct {
	target      unlock.Target
	broadcaster Broadcaster
	clock       clockwork.Clock
}

// NewCountdownJob creates the job; a nil clock uses the wall clock
func NewCountdownJob(target unlock.Target, broadcaster Broadcaster, clock clockwork.Clock) *CountdownJob {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CountdownJob{target: target, broadcaster: broadcaster, clock: clock}
}

// Process broadcasts one countdown.tick. A full hub buffer is not an error.
func (j *CountdownJob) Process(ctx context.Context) error {
	view := presenter.Countdown(j.target, j.clock.Now())
	if !j.broadcaster.Broadcast(domain.EventCountdownTick, view) {
		logger.FromContext(ctx).Debug(LogMsgCountdownNotDelivered)
	}
	return nil
}
