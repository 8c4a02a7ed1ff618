package clock

import "time"

// Clock abstracts wall time so stores and services stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports real time in UTC. Callers that need the user's calendar
// day (the "today's check-in" lookup) convert to time.Local at the point of use.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
