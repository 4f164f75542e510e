package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsActive(t *testing.T) {
	start, end := date("2024-01-01"), date("2024-01-31")

	tests := []struct {
		name string
		ref  time.Time
		want bool
	}{
		{"Inclusive lower bound", date("2024-01-01"), true},
		{"Inside", date("2024-01-15"), true},
		{"Inclusive upper bound", date("2024-01-31"), true},
		{"After", date("2024-02-01"), false},
		{"Before", date("2023-12-31"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActive(start, end, tt.ref))
		})
	}
}

func TestDateActive_IgnoresTimeOfDay(t *testing.T) {
	start, end := date("2024-01-01"), date("2024-01-31")

	lastEvening := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	assert.True(t, DateActive(start, end, lastEvening))

	berlin := time.FixedZone("CET", 3600)
	// 00:30 on Feb 1st in Berlin is still Jan 31st in UTC; the local date decides.
	assert.False(t, DateActive(start, end, time.Date(2024, 2, 1, 0, 30, 0, 0, berlin)))
}

func TestClockActive(t *testing.T) {
	at := func(h, m, s int) time.Time { return time.Date(2024, 5, 1, h, m, s, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end string
		ref        time.Time
		want       bool
	}{
		{"Start bound", "11:00:00", "14:30:00", at(11, 0, 0), true},
		{"End bound", "11:00:00", "14:30:00", at(14, 30, 0), true},
		{"Just after", "11:00:00", "14:30:00", at(14, 30, 1), false},
		{"Short form", "11:00", "14:30", at(12, 0, 0), true},
		{"Crossing midnight is empty", "22:00", "02:00", at(23, 0, 0), false},
		{"Garbage", "noon", "14:30", at(12, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockActive(tt.start, tt.end, tt.ref))
		})
	}
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("07:05:09")
	assert.NoError(t, err)
	assert.Equal(t, 7*time.Hour+5*time.Minute+9*time.Second, d)

	for _, bad := range []string{"", "7", "24:00", "10:60", "1:2:3:4", "aa:bb"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}
