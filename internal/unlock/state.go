package unlock

import (
	"fmt"
	"time"
)

// Reason records why the wish cards were unlocked
type Reason string

// Unlock reasons, labelled like the page's console log
const (
	ReasonNone              Reason = ""
	ReasonPersisted         Reason = "persisted-unlock"
	ReasonDeveloperOverride Reason = "dev-param-unlock"
	ReasonTimeElapsed       Reason = "date-elapsed"
)

// State is either Locked with a remaining duration or Unlocked with a reason
type State struct {
	Unlocked  bool
	Reason    Reason
	Remaining time.Duration
}

// LockedFor builds a Locked state
func LockedFor(remaining time.Duration) State {
	if remaining < 0 {
		remaining = 0
	}
	return State{Remaining: remaining}
}

// UnlockedBy builds an Unlocked state
func UnlockedBy(reason Reason) State {
	return State{Unlocked: true, Reason: reason}
}

// IsLocked reports whether the cards are still locked
func (s State) IsLocked() bool {
	return !s.Unlocked
}

// SameStatus compares lock status and reason, ignoring remaining time
func (s State) SameStatus(other State) bool {
	return s.Unlocked == other.Unlocked && s.Reason == other.Reason
}

func (s State) String() string {
	if s.Unlocked {
		return fmt.Sprintf("Unlocked{%s}", s.Reason)
	}
	return fmt.Sprintf("Locked{%s}", s.Remaining)
}
