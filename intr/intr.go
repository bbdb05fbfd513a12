// Package intr models a single core's interrupt mask.
//
// A Controller stands in for the CPU's interrupt-enable flag: code that
// must not be preempted disables delivery, runs its critical section,
// and re-enables. A handler fired while delivery is masked stays
// pending and is delivered when the mask drops, the same way a single
// core holds an interrupt until interrupts are enabled again.
package intr

import "sync"

// Handler is an interrupt service routine.
type Handler func()

// Controller is one core's interrupt mask and pending-interrupt latch.
// The zero value is an enabled controller with nothing pending.
type Controller struct {
	mu      sync.Mutex
	depth   int
	pending []Handler
}

// Disable masks interrupt delivery. Calls nest; delivery resumes only
// when every Disable has been matched by an Enable.
func (c *Controller) Disable() {
	c.mu.Lock()
	c.depth++
	c.mu.Unlock()
}

// Enable removes one level of masking. When the final level is removed,
// handlers that fired while masked are delivered in arrival order on
// the enabling goroutine.
func (c *Controller) Enable() {
	c.mu.Lock()
	if c.depth > 0 {
		c.depth--
	}
	var run []Handler
	if c.depth == 0 && len(c.pending) > 0 {
		run = c.pending
		c.pending = nil
	}
	c.mu.Unlock()

	for _, h := range run {
		h()
	}
}

// Enabled reports whether delivery is currently unmasked.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.depth == 0
}

// Without runs fn with interrupt delivery masked, restoring the
// previous mask level on every exit path.
func (c *Controller) Without(fn func()) {
	c.Disable()
	defer c.Enable()
	fn()
}

// Fire delivers an interrupt: the handler runs immediately when
// delivery is enabled, otherwise it is latched and runs on the final
// Enable.
func (c *Controller) Fire(h Handler) {
	c.mu.Lock()
	if c.depth > 0 {
		c.pending = append(c.pending, h)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	h()
}
