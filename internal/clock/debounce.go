package clock

import (
	"context"
	"errors"
	"time"
)

// Debouncer coalesces bursts of triggers into a single settled event emitted
// after a quiet period of the configured delay. Triggers arriving while the
// timer runs reset it, so only the last edit of a burst produces an event.
type Debouncer struct {
	delay   time.Duration
	trigger chan struct{}
	settled chan struct{}
}

// NewDebouncer constructs a Debouncer with the given settle delay.
func NewDebouncer(delay time.Duration) (*Debouncer, error) {
	if delay <= 0 {
		return nil, errors.New("settle delay must be positive")
	}
	return &Debouncer{
		delay:   delay,
		trigger: make(chan struct{}, 1),
		settled: make(chan struct{}, 1),
	}, nil
}

// Trigger notes an edit. Safe to call from any goroutine; bursts are coalesced.
func (d *Debouncer) Trigger() {
	select {
	case d.trigger <- struct{}{}:
	default:
	}
}

// Settled returns the channel receiving one event per settled burst.
func (d *Debouncer) Settled() <-chan struct{} {
	return d.settled
}

// Run drives the debouncer until the context is canceled.
func (d *Debouncer) Run(ctx context.Context) error {
	timer := time.NewTimer(d.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	armed := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.trigger:
			if armed && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(d.delay)
			armed = true
		case <-timer.C:
			armed = false
			select {
			case d.settled <- struct{}{}:
			default:
			}
		}
	}
}
