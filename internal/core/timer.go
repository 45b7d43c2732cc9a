package core

import "time"

// DefaultDelay is the pause between automatic generations.
const DefaultDelay = 20 * time.Millisecond

// Cadence gates automatic generations so that at least a fixed delay passes
// between two of them. It never reports more than one due generation per
// call, so a slow host loop skips time instead of bursting.
type Cadence struct {
	delay time.Duration
	next  time.Time
}

// NewCadence constructs a Cadence with the given delay. Non-positive delays
// fall back to DefaultDelay.
func NewCadence(delay time.Duration) *Cadence {
	c := &Cadence{}
	c.SetDelay(delay)
	return c
}

// SetDelay changes the inter-generation delay.
func (c *Cadence) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	c.delay = delay
}

// Delay returns the configured delay.
func (c *Cadence) Delay() time.Duration { return c.delay }

// Reset arms the cadence so the next call to Due fires immediately.
func (c *Cadence) Reset() { c.next = time.Time{} }

// Due reports whether a generation should run at now. When it returns true
// the next generation is scheduled one delay later.
func (c *Cadence) Due(now time.Time) bool {
	if !c.next.IsZero() && now.Before(c.next) {
		return false
	}
	c.next = now.Add(c.delay)
	return true
}
