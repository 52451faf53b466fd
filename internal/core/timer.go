package core

import (
	"context"
	"time"
)

// FixedStep helps run simulation updates at a steady interval from a
// frame-driven loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FixedStep{step: interval, accumulator: interval, now: time.Now}
}

// Interval reports the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Every calls fn once per interval until ctx is cancelled. Cancelling the
// context is the only way to stop it; fn is never interrupted mid-call.
func Every(ctx context.Context, interval time.Duration, fn func()) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Both cases may be ready at once; cancellation wins.
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
		}
	}
}
