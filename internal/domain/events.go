package domain

// EventType identifies a presentation event pushed to page sessions
type EventType string

// Presentation event types
const (
	// EventUnlockLocked is sent on every tick while the wish cards are locked
	EventUnlockLocked EventType = "unlock.locked"

	// EventUnlockUnlocked is sent when the wish cards become available
	EventUnlockUnlocked EventType = "unlock.unlocked"

	// EventCountdownTick is the site-wide landing countdown
	EventCountdownTick EventType = "countdown.tick"
)

// EffectConfettiBurst is the celebratory effect requested on unlock
const EffectConfettiBurst = "confetti-burst"
