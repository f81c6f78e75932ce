package unlock

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/metrics"
)

// Listener receives every emitted state and reports whether it reached the
// page. An undelivered unlock is emitted again on the next tick. It is called
// from the scheduler's own goroutine (or the caller of Start/Tick), never
// concurrently.
type Listener interface {
	OnState(ctx context.Context, state State) bool
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ctx context.Context, state State) bool

// OnState calls f
func (f ListenerFunc) OnState(ctx context.Context, state State) bool {
	return f(ctx, state)
}

// SchedulerConfig configures one page session's scheduler
type SchedulerConfig struct {
	Target       Target
	DevOverride  bool
	FastInterval time.Duration
	SlowInterval time.Duration
	Clock        clockwork.Clock
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	if c.Target.Location == nil {
		c.Target = DefaultTarget()
	}
	if c.FastInterval <= 0 {
		c.FastInterval = DefaultFastInterval
	}
	if c.SlowInterval <= 0 {
		c.SlowInterval = DefaultSlowInterval
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return c
}

// Scheduler owns the lock state of one page session. Start reconciles the
// persisted flag, emits the initial state and then re-evaluates on a fast and
// a slow ticker until the cards unlock, after which both tickers stop.
type Scheduler struct {
	cfg      SchedulerConfig
	flag     Flag
	listener Listener

	tickMu      sync.Mutex // serialises evaluate+emit
	undelivered bool       // guarded by tickMu

	mu      sync.Mutex
	last    *State
	started bool
	stopped bool

	quit       chan struct{}
	done       chan struct{}
	finishOnce sync.Once
}

// NewScheduler creates a scheduler. A nil flag behaves like unavailable storage.
func NewScheduler(cfg SchedulerConfig, flag Flag, listener Listener) *Scheduler {
	if listener == nil {
		listener = ListenerFunc(func(context.Context, State) bool { return true })
	}
	return &Scheduler{
		cfg:      cfg.withDefaults(),
		flag:     flag,
		listener: listener,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the load-time reconciliation and initial evaluation
// synchronously, then starts the tickers unless the unlock was already
// delivered.
// Cancelling ctx stops the scheduler like Stop does.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	metrics.UnlockSessionsActive.Inc()
	log := logger.FromContext(ctx)

	if Reconcile(ctx, s.cfg.Target, s.cfg.Clock.Now(), s.cfg.DevOverride, s.flag) {
		log.Debug(LogMsgStaleFlagCleared)
	}

	if _, done := s.tick(ctx, metrics.TickKindInitial); done {
		s.finish()
		return
	}

	fast := s.cfg.Clock.NewTicker(s.cfg.FastInterval)
	slow := s.cfg.Clock.NewTicker(s.cfg.SlowInterval)
	log.Debug(LogMsgSchedulerStarted,
		"fast_interval", s.cfg.FastInterval,
		"slow_interval", s.cfg.SlowInterval)

	go s.run(ctx, fast, slow)
}

func (s *Scheduler) run(ctx context.Context, fast, slow clockwork.Ticker) {
	defer s.finish()
	defer fast.Stop()
	defer slow.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-ctx.Done():
			return
		case <-fast.Chan():
			if _, done := s.tick(ctx, metrics.TickKindFast); done {
				return
			}
		case <-slow.Chan():
			if _, done := s.tick(ctx, metrics.TickKindSlow); done {
				return
			}
		}
	}
}

// Tick re-evaluates now and emits if needed. After an unlock has been
// delivered it returns that state without touching storage again.
func (s *Scheduler) Tick(ctx context.Context) State {
	state, _ := s.tick(ctx, metrics.TickKindManual)
	return state
}

// tick reports done once an unlocked state has been delivered
func (s *Scheduler) tick(ctx context.Context, kind string) (State, bool) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	if last, ok := s.Current(); ok && last.Unlocked {
		if !s.undelivered {
			return last, true
		}
		return last, s.deliver(ctx, last)
	}

	metrics.UnlockTicks.WithLabelValues(kind).Inc()
	state := Evaluate(ctx, s.cfg.Target, s.cfg.Clock.Now(), s.flag, s.cfg.DevOverride)

	s.mu.Lock()
	emitted := state
	s.last = &emitted
	s.mu.Unlock()

	if state.Unlocked {
		metrics.UnlockTransitions.WithLabelValues(string(state.Reason)).Inc()
		logger.FromContext(ctx).Info(LogMsgUnlocked, "reason", state.Reason)
	}
	return state, s.deliver(ctx, state)
}

// deliver must be called with tickMu held
func (s *Scheduler) deliver(ctx context.Context, state State) bool {
	delivered := s.listener.OnState(ctx, state)
	if !state.Unlocked {
		return false
	}
	s.undelivered = !delivered
	if !delivered {
		logger.FromContext(ctx).Warn(LogMsgUnlockUndelivered, "reason", state.Reason)
	}
	return delivered
}

// Current returns the last emitted state, if any
func (s *Scheduler) Current() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return State{}, false
	}
	return *s.last, true
}

// Done is closed once the scheduler has no further work: it unlocked,
// was stopped, or its context ended.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Stop cancels the tickers and waits for the loop to exit. Safe to call
// more than once and before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.stopped = true
	started := s.started
	s.mu.Unlock()

	close(s.quit)
	if !started {
		s.finishOnce.Do(func() { close(s.done) })
	}
	<-s.done
}

func (s *Scheduler) finish() {
	s.finishOnce.Do(func() {
		metrics.UnlockSessionsActive.Dec()
		close(s.done)
		state, _ := s.Current()
		logger.Debug(LogMsgSchedulerStopped, "state", state.String())
	})
}
