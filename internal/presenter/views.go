// Package presenter turns unlock states into the JSON views the page renders.
package presenter

import (
	"fmt"
	"time"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

// LockedView renders the lock overlay of the wish cards
type LockedView struct {
	Locked      bool   `json:"locked"`
	RemainingMS int64  `json:"remaining_ms"`
	Days        int64  `json:"days"`
	Hours       int64  `json:"hours"`
	Minutes     int64  `json:"minutes"`
	Seconds     int64  `json:"seconds"`
	Text        string `json:"text"`
	Note        string `json:"note"`
}

// UnlockedView removes the overlay. Transition and Effect are only set on the
// first unlocked view a session sees.
type UnlockedView struct {
	Locked     bool   `json:"locked"`
	Reason     string `json:"reason"`
	Transition bool   `json:"transition"`
	Effect     string `json:"effect,omitempty"`
}

// CountdownView is the landing countdown, zero padded like the page shows it
type CountdownView struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	Elapsed bool   `json:"elapsed"`
}

// Locked builds the overlay view for a remaining duration
func Locked(target unlock.Target, remaining time.Duration) LockedView {
	if remaining < 0 {
		remaining = 0
	}
	b := unlock.BreakdownOf(remaining)
	return LockedView{
		Locked:      true,
		RemainingMS: remaining.Milliseconds(),
		Days:        b.Days,
		Hours:       b.Hours,
		Minutes:     b.Minutes,
		Seconds:     b.Seconds,
		Text:        unlock.LockText(remaining),
		Note:        target.Note(),
	}
}

// Unlocked builds the unlocked view; first requests the transition effect
func Unlocked(reason unlock.Reason, first bool) UnlockedView {
	view := UnlockedView{Reason: string(reason)}
	if first {
		view.Transition = true
		view.Effect = domain.EffectConfettiBurst
	}
	return view
}

// View maps any state to its event type and payload
func View(target unlock.Target, state unlock.State, first bool) (domain.EventType, any) {
	if state.Unlocked {
		return domain.EventUnlockUnlocked, Unlocked(state.Reason, first)
	}
	return domain.EventUnlockLocked, Locked(target, state.Remaining)
}

// Countdown builds the landing countdown view for now
func Countdown(target unlock.Target, now time.Time) CountdownView {
	b := unlock.BreakdownOf(target.Remaining(now))
	return CountdownView{
		Days:    pad(b.Days),
		Hours:   pad(b.Hours),
		Minutes: pad(b.Minutes),
		Seconds: pad(b.Seconds),
		Elapsed: target.Elapsed(now),
	}
}

func pad(n int64) string {
	return fmt.Sprintf("%02d", n)
}
