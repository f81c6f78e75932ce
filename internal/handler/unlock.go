package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/presenter"
	"github.com/Rama-Divya/Myhero/internal/sse"
	"github.com/Rama-Divya/Myhero/internal/storage"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

// UnlockConfig holds the page-level unlock settings
type UnlockConfig struct {
	Target        unlock.Target
	FlagKey       string
	DevParam      string
	DevParamValue string
	FastInterval  time.Duration
	SlowInterval  time.Duration
	Clock         clockwork.Clock
}

// UnlockHandler serves the wish card lock over HTTP and SSE
type UnlockHandler struct {
	cfg      UnlockConfig
	store    storage.Store
	visitors *Visitors
}

// NewUnlockHandler creates the handler
func NewUnlockHandler(cfg UnlockConfig, store storage.Store, visitors *Visitors) *UnlockHandler {
	if cfg.FlagKey == "" {
		cfg.FlagKey = domain.DefaultFlagKey
	}
	if cfg.DevParam == "" {
		cfg.DevParam = domain.DefaultDevParam
	}
	if cfg.DevParamValue == "" {
		cfg.DevParamValue = domain.DefaultDevParamValue
	}
	if cfg.Target.Location == nil {
		cfg.Target = unlock.DefaultTarget()
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &UnlockHandler{cfg: cfg, store: store, visitors: visitors}
}

// TargetResponse describes the next unlock instant
type TargetResponse struct {
	TargetUTC   time.Time `json:"target_utc"`
	TargetLocal string    `json:"target_local"`
	Zone        string    `json:"zone"`
	Note        string    `json:"note"`
	Now         time.Time `json:"now"`
	RemainingMS int64     `json:"remaining_ms"`
	Elapsed     bool      `json:"elapsed"`
}

// HandleTarget returns the target instant as seen from now
func (h *UnlockHandler) HandleTarget(w http.ResponseWriter, r *http.Request) {
	now := h.cfg.Clock.Now()
	instant := h.cfg.Target.Instant(now)
	respondJSON(w, http.StatusOK, TargetResponse{
		TargetUTC:   instant.UTC(),
		TargetLocal: instant.Format(time.RFC3339),
		Zone:        h.cfg.Target.ZoneName(),
		Note:        h.cfg.Target.Note(),
		Now:         now.UTC(),
		RemainingMS: h.cfg.Target.Remaining(now).Milliseconds(),
		Elapsed:     h.cfg.Target.Elapsed(now),
	})
}

// HandleState performs one page-load evaluation: reconcile the persisted
// flag, evaluate, and return the card view.
func (h *UnlockHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	ctx, visitor := h.visitorContext(w, r)
	override := h.devOverride(r)
	flag := storage.NewFlag(h.store, visitor, h.cfg.FlagKey)

	now := h.cfg.Clock.Now()
	unlock.Reconcile(ctx, h.cfg.Target, now, override, flag)
	state := unlock.Evaluate(ctx, h.cfg.Target, now, flag, override)

	logger.FromContext(ctx).Debug(LogMsgUnlockStateResolved, "state", state.String(), "dev", override)
	_, view := presenter.View(h.cfg.Target, state, true)
	respondJSON(w, http.StatusOK, view)
}

// HandleReset clears the caller's persisted flag. A caller without a visitor
// cookie has nothing to clear.
func (h *UnlockHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitors.Lookup(r)
	if err != nil {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUnlockFlagCleared})
		return
	}

	ctx := logger.WithVisitorID(r.Context(), visitor)
	log := logger.FromContext(ctx)
	if err := storage.NewFlag(h.store, visitor, h.cfg.FlagKey).Clear(ctx); err != nil {
		log.Error(LogMsgResetFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	log.Info(LogMsgUnlockFlagReset)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUnlockFlagCleared})
}

// Session starts a scheduler for one SSE page session. Its presenter
// publishes to that client only; disconnecting stops the scheduler.
func (h *UnlockHandler) Session(w http.ResponseWriter, r *http.Request, sink *sse.ClientSink) func() {
	ctx, visitor := h.visitorContext(w, r)
	override := h.devOverride(r)

	sched := unlock.NewScheduler(unlock.SchedulerConfig{
		Target:       h.cfg.Target,
		DevOverride:  override,
		FastInterval: h.cfg.FastInterval,
		SlowInterval: h.cfg.SlowInterval,
		Clock:        h.cfg.Clock,
	}, storage.NewFlag(h.store, visitor, h.cfg.FlagKey), presenter.New(h.cfg.Target, sink))

	logger.FromContext(ctx).Info(LogMsgSessionStarted, "dev", override)
	sched.Start(ctx)
	return sched.Stop
}

func (h *UnlockHandler) devOverride(r *http.Request) bool {
	return unlock.ParseOverride(r.URL.RawQuery, h.cfg.DevParam, h.cfg.DevParamValue)
}

func (h *UnlockHandler) visitorContext(w http.ResponseWriter, r *http.Request) (context.Context, string) {
	visitor := h.visitors.Resolve(w, r)
	return logger.WithVisitorID(r.Context(), visitor), visitor
}
