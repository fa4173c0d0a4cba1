package domain

import (
	"context"
	"sync"
	"time"
)

// DefaultHoldWindow is how long a selection is held before it expires.
const DefaultHoldWindow = 10 * time.Minute

// Countdown is the hold-window clock: a (minutes, seconds) state machine that
// decrements once per tick and clamps at (0, 0). Reaching zero is terminal;
// further ticks are no-ops.
type Countdown struct {
	mu      sync.Mutex
	minutes int
	seconds int
	expired bool
}

func NewCountdown(window time.Duration) *Countdown {
	if window < 0 {
		window = 0
	}

	total := int(window / time.Second)

	c := &Countdown{
		minutes: total / 60,
		seconds: total % 60,
	}
	c.expired = c.minutes == 0 && c.seconds == 0

	return c
}

// Tick advances the clock by one second. It reports false once the countdown
// has reached (0, 0); the first false return marks the expiry transition.
func (c *Countdown) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.expired {
		return false
	}

	if c.seconds == 0 {
		c.minutes--
		c.seconds = 59
	} else {
		c.seconds--
	}

	if c.minutes == 0 && c.seconds == 0 {
		c.expired = true
		return false
	}

	return true
}

func (c *Countdown) Remaining() (minutes, seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.minutes, c.seconds
}

func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.expired
}

// Run drives the countdown from a one-second ticker until it expires or ctx is
// cancelled. Cancellation is deterministic: once ctx is done no further state
// mutation happens, so a torn-down session never sees a late tick. onExpire is
// invoked at most once, at the expiry transition.
func (c *Countdown) Run(ctx context.Context, onExpire func()) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.Tick() {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}
