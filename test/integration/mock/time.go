package mock

import (
	"sync"
	"time"
)

// Time is a settable frozen clock. Scenarios that span months move it
// explicitly instead of waiting for wall time.
type Time struct {
	mu  sync.Mutex
	now time.Time
}

func NewTime() *Time {
	return &Time{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
}

// Set freezes the clock at the given instant.
func (t *Time) Set(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

// Now implements adapter.Clock.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}
