package presenter

import (
	"context"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

// Sink delivers one presentation event to a page session
type Sink interface {
	Publish(eventType domain.EventType, payload any) bool
}

// SinkFunc adapts a function to Sink
type SinkFunc func(eventType domain.EventType, payload any) bool

// Publish calls f
func (f SinkFunc) Publish(eventType domain.EventType, payload any) bool {
	return f(eventType, payload)
}

// Presenter is the unlock.Listener of one page session
type Presenter struct {
	target     unlock.Target
	sink       Sink
	celebrated bool
}

// New creates a presenter writing to sink
func New(target unlock.Target, sink Sink) *Presenter {
	return &Presenter{target: target, sink: sink}
}

// OnState publishes the view for state and reports whether the sink took it.
// The session counts as celebrated only once an unlocked view is delivered.
// The scheduler never calls it concurrently, so celebrated needs no lock.
func (p *Presenter) OnState(ctx context.Context, state unlock.State) bool {
	eventType, payload := View(p.target, state, state.Unlocked && !p.celebrated)
	if !p.sink.Publish(eventType, payload) {
		logger.FromContext(ctx).Debug(LogMsgEventDropped, "type", eventType)
		return false
	}
	if state.Unlocked {
		p.celebrated = true
	}
	return true
}

// Celebrated reports whether the unlock transition has been delivered
func (p *Presenter) Celebrated() bool {
	return p.celebrated
}
