// Package clock provides the monotonic time source the control core
// times its shift episodes against.
package clock

import (
	"sync"
	"time"
)

// Clock is the narrow monotonic time interface the core consumes.
// NowMs must be monotonically non-decreasing and wrap-safe for at least
// 49 days of uptime; a uint64 millisecond counter satisfies that for
// roughly 584 million years, so no wraparound handling is needed beyond
// using the wide type.
type Clock interface {
	NowMs() uint64
}

// System is the real monotonic clock, backed by time.Now(). It latches
// an epoch on first use so NowMs starts near zero, matching a
// microcontroller's uptime-since-boot semantics.
type System struct {
	once  sync.Once
	epoch time.Time
}

// NewSystem returns a ready-to-use System clock.
func NewSystem() *System {
	return &System{}
}

func (s *System) NowMs() uint64 {
	s.once.Do(func() { s.epoch = time.Now() })
	return uint64(time.Since(s.epoch).Milliseconds())
}

// Fake is a manually advanced clock for deterministic tests.
type Fake struct {
	mu  sync.Mutex
	now uint64
}

// NewFake returns a Fake clock starting at t=0ms.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) NowMs() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the fake clock forward by the given number of
// milliseconds and returns the new time.
func (f *Fake) Advance(ms uint64) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now += ms
	return f.now
}

// Set pins the fake clock to an absolute millisecond value.
func (f *Fake) Set(ms uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = ms
}
