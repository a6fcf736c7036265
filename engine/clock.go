package engine

import "time"

// TickClock is a monotonic millisecond tick counter starting at zero on creation.
// Tick counts wrap after ~49 days; comparisons go through TicksPassed
type TickClock struct {
	provider TimeProvider
	start    time.Time
}

// NewTickClock starts a tick clock on provider; nil uses the monotonic system clock
func NewTickClock(provider TimeProvider) *TickClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &TickClock{provider: provider, start: provider.Now()}
}

// Ticks returns milliseconds elapsed since the clock was created
func (c *TickClock) Ticks() uint32 {
	return uint32(c.provider.Now().Sub(c.start) / time.Millisecond)
}

// Until returns the real duration remaining before ticks reaches target, zero if passed
func (c *TickClock) Until(target uint32) time.Duration {
	now := c.Ticks()
	if TicksPassed(now, target) {
		return 0
	}
	return time.Duration(target-now) * time.Millisecond
}

// TicksPassed reports whether tick count a has reached b, tolerating wraparound
func TicksPassed(a, b uint32) bool {
	return int32(b-a) <= 0
}

// DeltaSeconds converts the tick difference between frames to seconds
func DeltaSeconds(now, last uint32) float64 {
	return float64(now-last) / 1000.0
}
