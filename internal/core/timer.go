package core

import (
	"context"
	"time"
)

// Pacer spaces out successive rows at a steady rows-per-second rate.
type Pacer struct {
	step time.Duration
	last time.Time
}

// NewPacer constructs a Pacer targeting the given rate. A rate of zero or less
// disables pacing entirely.
func NewPacer(rps int) *Pacer {
	p := &Pacer{}
	p.SetRate(rps)
	return p
}

// SetRate changes the row rate.
func (p *Pacer) SetRate(rps int) {
	if rps <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(rps)
}

// Step returns the interval between rows, zero when pacing is disabled.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until the next row is due or ctx is done. The first call
// returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.step == 0 {
		return nil
	}
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
		return nil
	}
	due := p.last.Add(p.step)
	if delay := due.Sub(now); delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		p.last = due
		return nil
	}
	p.last = now
	return nil
}
