package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/worker"
)

// LogMsgJobSkipped is logged when the pool refused a scheduled run
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Enqueuer accepts jobs for asynchronous execution
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	clock      clockwork.Clock
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler on the wall clock
func New(pool Enqueuer) *Scheduler {
	return NewWithClock(pool, clockwork.NewRealClock())
}

// NewWithClock creates a scheduler driven by clock
func NewWithClock(pool Enqueuer, clock clockwork.Clock) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		clock:      clock,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, first after one interval
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, false)
}

// ScheduleNow is Schedule with an extra run right away
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, true)
}

func (s *Scheduler) schedule(interval time.Duration, job worker.Job, immediate bool) {
	// The ticker exists before Schedule returns so fake clocks see it
	ticker := s.clock.NewTicker(interval)
	if immediate {
		s.enqueue(job)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				// Enqueue never blocks; a busy pool just skips this run
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(job worker.Job) {
	if !s.workerPool.Enqueue(job) {
		logger.Debug(LogMsgJobSkipped)
	}
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
