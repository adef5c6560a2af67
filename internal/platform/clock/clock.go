package clock

import "time"

// Clock abstracts wall time so quiz timing and streak logic stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// DayKey collapses a timestamp to calendar-day granularity (YYYY-MM-DD).
// Streak bookkeeping compares days, never times.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
