package mock

import (
	"sync"
	"time"
)

// Time is a settable clock for tests. Urgency scoring and funding-history
// months depend on "now", so scenarios pin it to a fixed date.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

// NewTime returns a clock pinned to a fixed mid-month date.
func NewTime() *Time {
	return &Time{
		current: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

// SetCurrentTime repins the clock.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
}

// Now returns the pinned time.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
