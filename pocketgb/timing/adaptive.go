package timing

import (
	"log/slog"
	"time"
)

// driftCheckInterval is how many frames pass between drift corrections.
const driftCheckInterval = 60

// driftTolerance is how far the schedule may wander before it gets
// nudged back; small deviations are left alone to avoid jitter.
const driftTolerance = 10 * time.Millisecond

// spinThreshold is the cutoff below which WaitForNextFrame busy-waits
// instead of sleeping, since time.Sleep is too coarse to land inside it.
const spinThreshold = 2 * time.Millisecond

// AdaptiveLimiter paces frames with a sleep-then-spin strategy: it
// sleeps for the bulk of the wait and busy-waits the last sliver for
// accuracy, then periodically corrects for accumulated scheduler drift.
type AdaptiveLimiter struct {
	frameBudget time.Duration
	deadline    time.Time
	frames      int64
}

func NewAdaptiveLimiter() *AdaptiveLimiter {
	return &AdaptiveLimiter{
		frameBudget: FrameDuration(),
		deadline:    time.Now(),
	}
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	remaining := a.deadline.Sub(time.Now())

	switch {
	case remaining > spinThreshold:
		time.Sleep(remaining - time.Millisecond)
		a.spinUntil(a.deadline)
	case remaining > 0:
		a.spinUntil(a.deadline)
	case remaining < -5*time.Millisecond:
		// badly behind schedule (e.g. after a breakpoint or GC pause):
		// resync instead of trying to burn through the backlog.
		a.deadline = time.Now()
	}

	a.deadline = a.deadline.Add(a.frameBudget)
	a.frames++

	if a.frames%driftCheckInterval == 0 {
		a.correctDrift()
	}
}

func (a *AdaptiveLimiter) spinUntil(t time.Time) {
	for time.Now().Before(t) {
	}
}

func (a *AdaptiveLimiter) correctDrift() {
	drift := time.Now().Sub(a.deadline.Add(-a.frameBudget))
	if drift.Abs() <= driftTolerance {
		return
	}

	a.deadline = a.deadline.Add(drift / 10)
	slog.Debug("frame pacing drift correction",
		"drift_ms", drift.Milliseconds(),
		"frames", a.frames)
}

func (a *AdaptiveLimiter) Reset() {
	a.deadline = time.Now()
	a.frames = 0
}
