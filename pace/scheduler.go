package pace

import (
	"context"
	"time"
)

// Scheduler decides when the next step may run.
type Scheduler interface {
	// Await blocks until the next step is due or ctx is done.
	Await(ctx context.Context) error
}

// Ticker releases one step per interval. Each Await resolves no earlier
// than interval after the previous Await resolved, or after the Ticker was
// created for the first call. A Ticker serves a single run and is not safe
// for concurrent use.
type Ticker struct {
	interval time.Duration
	last     time.Time
}

// NewTicker returns a Ticker whose first step is due interval from now.
// A non-positive interval never waits.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval, last: time.Now()}
}

// ForPreset returns a Ticker using p's interval.
func ForPreset(p Preset) *Ticker {
	return NewTicker(p.Interval())
}

// Interval returns the configured delay.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Await implements Scheduler.
func (t *Ticker) Await(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if wait := time.Until(t.last.Add(t.interval)); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	t.last = time.Now()
	return nil
}

type immediate struct{}

// Immediate returns a Scheduler that never waits. It still reports
// cancellation.
func Immediate() Scheduler { return immediate{} }

func (immediate) Await(ctx context.Context) error { return ctx.Err() }
