package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time; entry dates and report stamps follow
// the user's calendar, not UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
