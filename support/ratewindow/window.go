// Package ratewindow tracks a streak of consecutive non-improving
// observations, used by the run controller to detect a stalled search
// (no best-fitness improvement for plateauGenerations generations) and a
// stalled population mean (no mean-fitness improvement for
// steadyStateWindow generations).
//
// Adapted from the teacher's federation/server rate limiter: the same
// mutex-guarded rolling-counter shape, repurposed from a request-budget
// token bucket into a stall-detection streak counter.
package ratewindow

import "sync"

// Window counts how many consecutive Observe calls failed to beat the
// best value seen so far.
type Window struct {
	mu      sync.Mutex
	best    float64
	hasBest bool
	streak  int
}

// New returns an empty Window.
func New() *Window {
	return &Window{}
}

// Observe records a new value. It returns true if the value is a strict
// improvement over the best seen so far, which resets the stale streak to
// zero; otherwise it extends the streak and returns false.
func (w *Window) Observe(value float64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.hasBest || value > w.best {
		w.best = value
		w.hasBest = true
		w.streak = 0
		return true
	}
	w.streak++
	return false
}

// Streak returns the current count of consecutive non-improving
// observations.
func (w *Window) Streak() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.streak
}

// Exceeded reports whether the current streak has reached threshold.
func (w *Window) Exceeded(threshold int) bool {
	return w.Streak() >= threshold
}

// Best returns the best value observed so far and whether any observation
// has been made yet.
func (w *Window) Best() (float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.best, w.hasBest
}
