// Package clock abstracts wall-clock access so the tick transition can be
// driven by a fake in tests.
package clock

import (
	"fmt"
	"time"
)

// Clocker reports the current time.
type Clocker interface {
	Now() time.Time
}

// System reads the real system clock.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Test double.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// Sample returns the current time shifted into a fixed UTC offset zone, so
// its hour/minute/second accessors read out in that zone.
func Sample(c Clocker, offsetSeconds int) time.Time {
	return c.Now().In(time.FixedZone(zoneName(offsetSeconds), offsetSeconds))
}

func zoneName(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetSeconds/3600, offsetSeconds%3600/60)
}
