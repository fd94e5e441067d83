package mock

import (
	"sync"
	"time"
)

// Time is a clock that follows the wall clock until a scenario pins it.
type Time struct {
	mu      sync.RWMutex
	current time.Time
	pinned  bool
}

func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime pins the clock at currentTime.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.pinned = true
}

// Reset returns the clock to the wall clock.
func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pinned = false
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.pinned {
		return time.Now()
	}
	return t.current
}
