// Package throttle gates repeated "resend verification email" requests with a
// per-second countdown the hosting view can render.
package throttle

import (
	"sync"
	"time"
)

// DefaultResendWait is the cooldown armed after a successful resend.
const DefaultResendWait = 60 * time.Second

// Cooldown counts down once per second from a starting number of seconds.
// Each tick is a fresh single-shot timer rescheduled on fire, not a
// fixed-period ticker, so drift does not compound across ticks.
//
// The zero state (Remaining() == 0) means a resend is allowed. Stop must be
// called when the hosting view is torn down mid-countdown; no tick fires
// after Stop returns a stopped timer.
type Cooldown struct {
	mu        sync.Mutex
	remaining int
	timer     *time.Timer
	onTick    func(remaining int)
}

// New builds an idle Cooldown. onTick, if non-nil, is called after every
// decrement (including the final one to zero) with the seconds remaining.
func New(onTick func(remaining int)) *Cooldown {
	return &Cooldown{onTick: onTick}
}

// Start arms the countdown at the given number of seconds, replacing any
// countdown already in progress.
func (c *Cooldown) Start(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.remaining = seconds
	if seconds > 0 {
		c.timer = time.AfterFunc(time.Second, c.tick)
	}
}

func (c *Cooldown) tick() {
	c.mu.Lock()

	if c.remaining <= 0 {
		c.mu.Unlock()
		return
	}
	c.remaining--
	remaining := c.remaining
	if remaining > 0 {
		c.timer = time.AfterFunc(time.Second, c.tick)
	} else {
		c.timer = nil
	}
	onTick := c.onTick
	c.mu.Unlock()

	// callback runs outside the lock so it may call back into the Cooldown
	if onTick != nil {
		onTick(remaining)
	}
}

// Remaining returns the seconds left before another resend is permitted.
func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Active reports whether the countdown is still running.
func (c *Cooldown) Active() bool {
	return c.Remaining() > 0
}

// Stop cancels the countdown and resets it to zero. Safe to call at any
// time, including when idle.
func (c *Cooldown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.remaining = 0
}

func (c *Cooldown) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
