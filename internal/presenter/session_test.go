package presenter

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/sse"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

func newSessionScheduler(clock clockwork.Clock, p *Presenter) *unlock.Scheduler {
	return unlock.NewScheduler(unlock.SchedulerConfig{
		Target:       unlock.DefaultTarget(),
		FastInterval: time.Second,
		SlowInterval: 15 * time.Second,
		Clock:        clock,
	}, nil, p)
}

func waitSchedulerDone(t *testing.T, s *unlock.Scheduler) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not finish")
	}
}

func countTransitions(events []sse.Event) int {
	n := 0
	for _, event := range events {
		if view, ok := event.Payload.(UnlockedView); ok && view.Transition {
			n++
		}
	}
	return n
}

func drain(client *sse.Client) []sse.Event {
	var events []sse.Event
	for {
		select {
		case event := <-client.EventChannel:
			events = append(events, event)
		default:
			return events
		}
	}
}

func TestSession_UnlockReachesStalledClient(t *testing.T) {
	hub := sse.NewHub()
	defer hub.Stop()
	client := hub.Register(nil)

	clock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 18, 23, 59, 59, 0, ist))
	p := New(unlock.DefaultTarget(), hub.Sink(client.ID))
	sched := newSessionScheduler(clock, p)
	sched.Start(context.Background())
	defer sched.Stop()

	// Page stopped reading: the countdown fills its buffer
	for len(client.EventChannel) < cap(client.EventChannel) {
		require.True(t, hub.Publish(client.ID, domain.EventCountdownTick, nil))
	}

	clock.Advance(time.Second)
	waitSchedulerDone(t, sched)
	assert.True(t, p.Celebrated())

	events := drain(client)
	require.NotEmpty(t, events)
	assert.Equal(t, string(domain.EventUnlockUnlocked), events[len(events)-1].Type)
	assert.Equal(t, 1, countTransitions(events))
}

func TestSession_RefusedUnlockIsResent(t *testing.T) {
	var delivered []UnlockedView
	refusals := 1
	refused := make(chan struct{}, 1)
	sink := SinkFunc(func(eventType domain.EventType, payload any) bool {
		if eventType != domain.EventUnlockUnlocked {
			return true
		}
		if refusals > 0 {
			refusals--
			refused <- struct{}{}
			return false
		}
		delivered = append(delivered, payload.(UnlockedView))
		return true
	})

	clock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 18, 23, 59, 59, 0, ist))
	p := New(unlock.DefaultTarget(), sink)
	sched := newSessionScheduler(clock, p)
	sched.Start(context.Background())
	defer sched.Stop()

	clock.Advance(time.Second)
	select {
	case <-refused:
	case <-time.After(time.Second):
		t.Fatal("unlock was never published")
	}
	select {
	case <-sched.Done():
		t.Fatal("scheduler finished before the unlock was delivered")
	default:
	}

	clock.Advance(time.Second)
	waitSchedulerDone(t, sched)

	assert.True(t, p.Celebrated())
	require.Len(t, delivered, 1)
	assert.True(t, delivered[0].Transition)
	assert.Equal(t, string(unlock.ReasonTimeElapsed), delivered[0].Reason)
}
