package unlock

import "time"

// Default target: Aug 19, 00:00 at UTC+05:30 (IST)
const (
	DefaultMonth    = time.August
	DefaultDay      = 19
	DefaultZoneName = "IST"
	DefaultOffset   = 5*time.Hour + 30*time.Minute
)

// MaxOffset bounds the fixed UTC offset accepted for a target
const MaxOffset = 14 * time.Hour

// Default tick periods
const (
	// DefaultFastInterval keeps the remaining-time display fresh
	DefaultFastInterval = 1 * time.Second

	// DefaultSlowInterval guarantees the time-elapsed transition is detected
	DefaultSlowInterval = 15 * time.Second
)

// Display strings
const (
	LockTextPrefix    = "Unlocks in "
	LockTextUnlocking = "Unlocking..."
	BreakdownFormat   = "%02dd %02dh %02dm %02ds"
	NoteFormat        = "Available on %s %d (%s)"
)

// Log messages
const (
	LogMsgStaleFlagCleared  = "Cleared persisted unlock flag, target not reached and no override"
	LogMsgUnlocked          = "Wish cards unlocked"
	LogMsgUnlockUndelivered = "Unlock event not delivered, retrying on next tick"
	LogMsgFlagReadFailed    = "Persisted flag read failed, treating as absent"
	LogMsgFlagWriteFailed   = "Persisted flag write failed, ignoring"
	LogMsgFlagClearFailed   = "Persisted flag clear failed, ignoring"
	LogMsgSchedulerStarted  = "Unlock scheduler started"
	LogMsgSchedulerStopped  = "Unlock scheduler stopped"
)
