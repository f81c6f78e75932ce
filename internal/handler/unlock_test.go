package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/presenter"
	"github.com/Rama-Divya/Myhero/internal/sse"
	"github.com/Rama-Divya/Myhero/internal/storage"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

type unlockFixture struct {
	handler *UnlockHandler
	store   *storage.MemoryStore
	clock   *clockwork.FakeClock
}

func newUnlockFixture(t *testing.T, now time.Time) *unlockFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(now)
	h := NewUnlockHandler(UnlockConfig{
		Target: unlock.DefaultTarget(),
		Clock:  clock,
	}, store, NewVisitors("", false))
	return &unlockFixture{handler: h, store: store, clock: clock}
}

func (f *unlockFixture) state(t *testing.T, query string, cookie *http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/unlock/state"+query, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.handler.HandleState(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func (f *unlockFixture) flagSet(t *testing.T, visitor string) bool {
	t.Helper()
	set, err := storage.NewFlag(f.store, visitor, domain.DefaultFlagKey).IsSet(context.Background())
	require.NoError(t, err)
	return set
}

func visitorCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == domain.DefaultVisitorCookie {
			return c
		}
	}
	t.Fatal("visitor cookie not issued")
	return nil
}

func TestHandleState_LockedIssuesVisitor(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.August, 17, 22, 58, 58, 999_000_000, ist))

	w, body := f.state(t, "", nil)

	cookie := visitorCookie(t, w)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.True(t, cookie.HttpOnly)

	assert.Equal(t, true, body["locked"])
	assert.Equal(t, "Unlocks in 01d 01h 01m 01s", body["text"])
	assert.Equal(t, "Available on Aug 19 (IST)", body["note"])
	assert.Equal(t, float64(90061001), body["remaining_ms"])
}

func TestHandleState_DevOverrideThenReloadWithout(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, ist))

	w, body := f.state(t, "?dev=1", nil)
	cookie := visitorCookie(t, w)

	assert.Equal(t, false, body["locked"])
	assert.Equal(t, string(unlock.ReasonDeveloperOverride), body["reason"])
	assert.Equal(t, true, body["transition"])
	assert.Equal(t, domain.EffectConfettiBurst, body["effect"])
	assert.True(t, f.flagSet(t, cookie.Value))

	// Reload without the override before the target: the stale flag is cleared
	w, body = f.state(t, "", cookie)
	assert.Empty(t, w.Result().Cookies(), "known visitor keeps its cookie")
	assert.Equal(t, true, body["locked"])
	assert.False(t, f.flagSet(t, cookie.Value))
}

func TestHandleState_ElapsedPersists(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.August, 19, 9, 0, 0, 0, ist))

	w, body := f.state(t, "", nil)
	cookie := visitorCookie(t, w)
	assert.Equal(t, string(unlock.ReasonTimeElapsed), body["reason"])
	assert.True(t, f.flagSet(t, cookie.Value))

	// Later the same day the persisted flag wins
	f.clock.Advance(3 * time.Hour)
	_, body = f.state(t, "", cookie)
	assert.Equal(t, string(unlock.ReasonPersisted), body["reason"])
}

func TestHandleState_MalformedQueryIsNotOverride(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, ist))

	_, body := f.state(t, "?dev=1&bad=%zz", nil)
	assert.Equal(t, true, body["locked"])
}

func TestHandleState_InvalidCookieReplaced(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, ist))

	w, _ := f.state(t, "", &http.Cookie{Name: domain.DefaultVisitorCookie, Value: "forged"})
	cookie := visitorCookie(t, w)
	assert.NotEqual(t, "forged", cookie.Value)
}

func TestHandleState_StorageDownDegradesToClock(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, ist))
	require.NoError(t, f.store.Close())

	_, body := f.state(t, "?dev=1", nil)
	assert.Equal(t, false, body["locked"], "override still unlocks without storage")

	_, body = f.state(t, "", nil)
	assert.Equal(t, true, body["locked"])
}

func TestHandleTarget(t *testing.T) {
	now := time.Date(2026, time.August, 20, 0, 0, 0, 0, ist)
	f := newUnlockFixture(t, now)

	w := httptest.NewRecorder()
	f.handler.HandleTarget(w, httptest.NewRequest(http.MethodGet, "/api/v1/unlock/target", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp TargetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, time.Date(2027, time.August, 18, 18, 30, 0, 0, time.UTC), resp.TargetUTC)
	assert.Equal(t, "2027-08-19T00:00:00+05:30", resp.TargetLocal)
	assert.Equal(t, "IST", resp.Zone)
	assert.False(t, resp.Elapsed)
	assert.Equal(t, int64(364*24*time.Hour/time.Millisecond), resp.RemainingMS)
}

func TestHandleReset(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.August, 19, 9, 0, 0, 0, ist))
	w, _ := f.state(t, "", nil)
	cookie := visitorCookie(t, w)
	require.True(t, f.flagSet(t, cookie.Value))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/unlock/reset", nil)
	req.AddCookie(cookie)
	rw := httptest.NewRecorder()
	f.handler.HandleReset(rw, req)

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Body.String(), MsgUnlockFlagCleared)
	assert.False(t, f.flagSet(t, cookie.Value))
}

func TestHandleReset_NoVisitor(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, ist))

	w := httptest.NewRecorder()
	f.handler.HandleReset(w, httptest.NewRequest(http.MethodPost, "/api/v1/unlock/reset", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestHandleReset_StorageDown(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, ist))
	require.NoError(t, f.store.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/unlock/reset", nil)
	req.AddCookie(&http.Cookie{Name: domain.DefaultVisitorCookie, Value: uuid.NewString()})
	w := httptest.NewRecorder()
	f.handler.HandleReset(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUnavailableError)
}

type streamEvent struct {
	Type    string
	Payload json.RawMessage
}

func readStream(resp *http.Response) <-chan streamEvent {
	out := make(chan streamEvent, 32)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(resp.Body)
		var current streamEvent
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				current.Type = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				var envelope struct {
					Payload json.RawMessage `json:"payload"`
				}
				_ = json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &envelope)
				current.Payload = envelope.Payload
			case line == "":
				out <- current
				current = streamEvent{}
			}
		}
	}()
	return out
}

// nextOfType skips events of other types (keepalive, countdown)
func nextOfType(t *testing.T, events <-chan streamEvent, eventType string) streamEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "stream ended")
			if event.Type == eventType {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", eventType)
		}
	}
}

func TestSession_LockedThenUnlocked(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.August, 18, 23, 59, 57, 0, ist))
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(sse.Handler(hub, f.handler.Session))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var visitor string
	for _, c := range resp.Cookies() {
		if c.Name == domain.DefaultVisitorCookie {
			visitor = c.Value
		}
	}
	require.NotEmpty(t, visitor, "session issues the visitor cookie")

	events := readStream(resp)
	nextOfType(t, events, sse.EventTypeConnected)

	var locked presenter.LockedView
	require.NoError(t, json.Unmarshal(nextOfType(t, events, string(domain.EventUnlockLocked)).Payload, &locked))
	assert.Equal(t, "Unlocks in 00d 00h 00m 03s", locked.Text)

	f.clock.Advance(5 * time.Second)

	var unlocked presenter.UnlockedView
	require.NoError(t, json.Unmarshal(nextOfType(t, events, string(domain.EventUnlockUnlocked)).Payload, &unlocked))
	assert.Equal(t, string(unlock.ReasonTimeElapsed), unlocked.Reason)
	assert.True(t, unlocked.Transition)
	assert.Equal(t, domain.EffectConfettiBurst, unlocked.Effect)
	assert.Eventually(t, func() bool { return f.flagSet(t, visitor) }, time.Second, 10*time.Millisecond)
}

func TestSession_PersistedVisitorUnlocksImmediately(t *testing.T) {
	f := newUnlockFixture(t, time.Date(2026, time.August, 19, 10, 0, 0, 0, ist))
	visitor := uuid.NewString()
	require.NoError(t, storage.NewFlag(f.store, visitor, domain.DefaultFlagKey).Set(context.Background()))

	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(sse.Handler(hub, f.handler.Session))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+string(domain.EventUnlockUnlocked), nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: domain.DefaultVisitorCookie, Value: visitor})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	events := readStream(resp)
	var unlocked presenter.UnlockedView
	require.NoError(t, json.Unmarshal(nextOfType(t, events, string(domain.EventUnlockUnlocked)).Payload, &unlocked))
	assert.Equal(t, string(unlock.ReasonPersisted), unlocked.Reason)
}
