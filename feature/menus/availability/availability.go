package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IsActive reports whether ref lies within [start, end], inclusive at both ends.
func IsActive(start, end, ref time.Time) bool {
	return !ref.Before(start) && !ref.After(end)
}

// DateActive compares calendar dates only. start and end are read in their own
// location, ref in its own, so callers pass ref already in the business timezone.
func DateActive(start, end, ref time.Time) bool {
	return IsActive(dateOf(start), dateOf(end), dateOf(ref))
}

// ClockActive reports whether the wall-clock time of ref lies within the
// "HH:MM[:SS]" bounds start and end. Unparseable bounds are never active, and
// a window whose end precedes its start is empty.
func ClockActive(start, end string, ref time.Time) bool {
	from, err := ParseClock(start)
	if err != nil {
		return false
	}
	to, err := ParseClock(end)
	if err != nil {
		return false
	}
	h, m, s := ref.Clock()
	now := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	return from <= now && now <= to
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into an offset from midnight.
func ParseClock(v string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock time %q", v)
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var d time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("invalid clock time %q", v)
		}
		d += time.Duration(n) * units[i]
	}
	return d, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
