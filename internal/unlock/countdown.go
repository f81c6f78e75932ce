package unlock

import (
	"fmt"
	"time"
)

// Breakdown splits a duration into whole days, hours, minutes and seconds.
// Sub-second remainders are truncated.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// BreakdownOf returns the breakdown of d, clamping negatives to zero
func BreakdownOf(d time.Duration) Breakdown {
	if d < 0 {
		d = 0
	}
	const day = 24 * time.Hour
	return Breakdown{
		Days:    int64(d / day),
		Hours:   int64(d % day / time.Hour),
		Minutes: int64(d % time.Hour / time.Minute),
		Seconds: int64(d % time.Minute / time.Second),
	}
}

// String formats as "DDd HHh MMm SSs"
func (b Breakdown) String() string {
	return fmt.Sprintf(BreakdownFormat, b.Days, b.Hours, b.Minutes, b.Seconds)
}

// LockText is the human readable overlay text for a locked card
func LockText(remaining time.Duration) string {
	if remaining <= 0 {
		return LockTextUnlocking
	}
	return LockTextPrefix + BreakdownOf(remaining).String()
}
