package utils

import "time"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now directly so date rules can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }
