package calc

import "time"

// Clock supplies creation timestamps for calculations.
//
// Timestamps must be injectable: the codec round-trips them through an
// RFC 3339 string, and tests need a known instant on both sides of the
// round trip.
type Clock interface {
	Now() time.Time
}

// SystemClock returns wall-clock time in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Used in tests.
type FixedClock struct {
	T time.Time
}

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return c.T
}
