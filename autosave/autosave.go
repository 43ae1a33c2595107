// Package autosave persists edits after a quiet period instead of on
// every keystroke: each change restarts a single delay timer, and the
// save carries whatever state is latest when the timer fires.
package autosave

import (
	"sync"
	"time"
)

// DefaultDelay matches the editor's one second quiet period.
const DefaultDelay = time.Second

// SaveFunc performs one update call with the latest title and content.
type SaveFunc func(title, content string) error

// Coordinator coalesces rapid edits into one save per quiet period.
// There is no retry and no offline queue: a failed save only flips
// the failure flag, and scheduling ignores the outcome entirely.
type Coordinator struct {
	mu      sync.Mutex
	delay   time.Duration
	save    SaveFunc
	timer   *time.Timer
	pending bool
	title   string
	content string
	failed  bool
}

func New(delay time.Duration, save SaveFunc) *Coordinator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Coordinator{delay: delay, save: save}
}

// Change records the latest state and restarts the quiet-period
// timer. Earlier pending saves are superseded, never stacked.
func (c *Coordinator) Change(title, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.title = title
	c.content = content
	c.pending = true

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.fire)
}

// Flush runs a pending save immediately, without waiting out the
// quiet period.
func (c *Coordinator) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()
	c.fire()
}

// Stop discards any pending save.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = false
}

// PendingSave reports whether a change is waiting to be persisted.
func (c *Coordinator) PendingSave() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Failed reports whether the most recent save attempt errored. It is
// overwritten by every completed attempt.
func (c *Coordinator) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

func (c *Coordinator) fire() {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return
	}
	title, content := c.title, c.content
	c.pending = false
	c.mu.Unlock()

	if title == "" {
		title = "Untitled"
	}

	err := c.save(title, content)

	c.mu.Lock()
	c.failed = err != nil
	c.mu.Unlock()
}
