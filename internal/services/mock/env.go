// Package mock holds the shared plumbing for the simulated backend:
// injectable randomness, a clock, and context-aware artificial latency.
package mock

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Env is the simulation environment shared by the mock services. A fixed
// seed and zero latency make service output deterministic enough for
// structural assertions in tests.
type Env struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	latency time.Duration
	now     func() time.Time
}

// NewEnv creates a simulation environment. A zero seed selects a
// time-based seed; latency is the base simulated network delay.
func NewEnv(seed int64, latency time.Duration) *Env {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Env{
		rnd:     rand.New(rand.NewSource(seed)),
		latency: latency,
		now:     time.Now,
	}
}

// WithClock overrides the clock, for tests.
func (e *Env) WithClock(now func() time.Time) *Env {
	e.now = now
	return e
}

// Now returns the current simulated time.
func (e *Env) Now() time.Time {
	return e.now()
}

// Sleep simulates network delay scaled from the base latency. It returns
// early with the context error when the caller gives up.
func (e *Env) Sleep(ctx context.Context, factor float64) error {
	d := time.Duration(float64(e.latency) * factor)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Intn returns a random int in [0, n).
func (e *Env) Intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Intn(n)
}

// IntBetween returns a random int in [min, max].
func (e *Env) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return min + e.rnd.Intn(max-min+1)
}

// Float64 returns a random float in [0, 1).
func (e *Env) Float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Float64()
}

// Shuffle randomizes element order via Fisher-Yates.
func (e *Env) Shuffle(n int, swap func(i, j int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rnd.Shuffle(n, swap)
}

// PastDate returns a timestamp between minDays and maxDays ago.
func (e *Env) PastDate(minDays, maxDays int) time.Time {
	days := e.IntBetween(minDays, maxDays)
	return e.now().AddDate(0, 0, -days)
}
