package unlock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rama-Divya/Myhero/internal/domain"
)

// Target is a calendar day at 00:00 in a fixed UTC offset, recurring yearly
type Target struct {
	Month    time.Month
	Day      int
	Location *time.Location
}

// NewTarget validates and builds a Target. The day must exist in every year,
// so Feb 29 is rejected.
func NewTarget(month time.Month, day int, zoneName string, offset time.Duration) (Target, error) {
	if month < time.January || month > time.December {
		return Target{}, fmt.Errorf("%w: month %d", domain.ErrInvalidTarget, month)
	}
	if day < 1 || day > daysIn(month) {
		return Target{}, fmt.Errorf("%w: day %d of %s", domain.ErrInvalidTarget, day, month)
	}
	if offset%time.Minute != 0 || offset > MaxOffset || offset < -MaxOffset {
		return Target{}, fmt.Errorf("%w: %s", domain.ErrInvalidOffset, offset)
	}
	if zoneName == "" {
		zoneName = formatOffset(offset)
	}
	return Target{
		Month:    month,
		Day:      day,
		Location: time.FixedZone(zoneName, int(offset/time.Second)),
	}, nil
}

// DefaultTarget returns Aug 19 00:00 IST
func DefaultTarget() Target {
	return Target{
		Month:    DefaultMonth,
		Day:      DefaultDay,
		Location: time.FixedZone(DefaultZoneName, int(DefaultOffset/time.Second)),
	}
}

// Instant returns the target occurrence for now. The year rolls forward only
// once the target day has fully passed in the target offset, so on the target
// day itself the (already elapsed) midnight of that day is returned.
func (t Target) Instant(now time.Time) time.Time {
	local := now.In(t.Location)
	year := local.Year()
	if local.Month() > t.Month || (local.Month() == t.Month && local.Day() > t.Day) {
		year++
	}
	return time.Date(year, t.Month, t.Day, 0, 0, 0, 0, t.Location)
}

// Elapsed reports whether now is at or past the target instant
func (t Target) Elapsed(now time.Time) bool {
	return !now.Before(t.Instant(now))
}

// Remaining returns the time left until the target instant, never negative
func (t Target) Remaining(now time.Time) time.Duration {
	d := t.Instant(now).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// ZoneName returns the label of the fixed offset
func (t Target) ZoneName() string {
	name, _ := time.Date(2000, time.January, 1, 0, 0, 0, 0, t.Location).Zone()
	return name
}

// Note renders the overlay note, e.g. "Available on Aug 19 (IST)"
func (t Target) Note() string {
	return fmt.Sprintf(NoteFormat, t.Month.String()[:3], t.Day, t.ZoneName())
}

// ParseOffset parses "+05:30", "-03:00" or "05:30" into a duration
func ParseOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", domain.ErrInvalidOffset)
	}

	sign := time.Duration(1)
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidOffset, s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: hours %q", domain.ErrInvalidOffset, hh)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: minutes %q", domain.ErrInvalidOffset, mm)
	}

	d := sign * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
	if d > MaxOffset || d < -MaxOffset {
		return 0, fmt.Errorf("%w: %s out of range", domain.ErrInvalidOffset, d)
	}
	return d, nil
}

func formatOffset(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, int(offset/time.Hour), int(offset%time.Hour/time.Minute))
}

// daysIn uses a non-leap year
func daysIn(month time.Month) int {
	return time.Date(2023, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
