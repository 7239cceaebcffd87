package internal

import (
	"sync"
	"time"
)

// Controller debounces a recomputed value: it exposes one committed value
// that only updates after a quiet period has elapsed since the most recent
// change to its inputs.
//
// Eager mode recomputes synchronously on every change and stages the result
// as a pending value; only the visible commit is delayed. Lazy mode defers
// the computation itself to the timer fire, so intermediate snapshots never
// pay for it.
type Controller struct {
	mu    sync.Mutex
	timer Timer

	// the most recently supplied factory, updated on every Notify so a lazy
	// fire never runs a stale computation
	factory func() any

	value   any
	pending *any // staged eager result, nil if none

	snapshot Snapshot
	delay    time.Duration
	lazy     bool

	handle TimerHandle

	// bumped on every rearm, cancel and dispose; a fire that captured an
	// older sequence can never commit
	armSeq uint64

	onCommit func(any)
	disposed bool
}

type Config struct {
	// Factory recomputes the value. Required.
	Factory func() any

	// Snapshot is the initial dependency snapshot.
	Snapshot Snapshot

	// Delay is the quiet period. Must not be negative.
	Delay time.Duration

	// Lazy defers computation to the timer fire instead of recomputing
	// eagerly on every change.
	Lazy bool

	// Timer overrides the scheduling primitive. Defaults to SystemTimer.
	Timer Timer

	// OnCommit, if set, is called after each commit with the new value.
	OnCommit func(any)
}

// NewController computes the first value synchronously, regardless of
// policy. No timer is armed. A panicking factory propagates and leaves no
// controller behind.
func NewController(cfg Config) *Controller {
	if cfg.Factory == nil {
		panic("settle: debounce factory must not be nil")
	}
	if cfg.Delay < 0 {
		panic("settle: debounce delay must not be negative")
	}

	timer := cfg.Timer
	if timer == nil {
		timer = SystemTimer()
	}

	return &Controller{
		timer:    timer,
		factory:  cfg.Factory,
		value:    cfg.Factory(),
		snapshot: cfg.Snapshot,
		delay:    cfg.Delay,
		lazy:     cfg.Lazy,
		onCommit: cfg.OnCommit,
	}
}

// Notify is called once per host update cycle, whether or not anything
// changed. The factory reference is always refreshed. If the snapshot,
// delay and policy are all unchanged this is a no-op; otherwise any pending
// timer is cancelled and a new one armed for delay.
//
// In eager mode a snapshot change triggers a synchronous recomputation whose
// result is staged until the timer fires. A delay or policy change alone
// reschedules without recomputing. Switching policy to lazy discards any
// staged value.
func (c *Controller) Notify(snapshot Snapshot, factory func() any, delay time.Duration, lazy bool) {
	if factory == nil {
		panic("settle: debounce factory must not be nil")
	}
	if delay < 0 {
		panic("settle: debounce delay must not be negative")
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}

	c.factory = factory

	changed := !c.snapshot.Equal(snapshot)
	if !changed && delay == c.delay && lazy == c.lazy {
		c.mu.Unlock()
		return
	}

	c.armSeq++
	seq := c.armSeq
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}

	c.snapshot = snapshot
	c.delay = delay
	c.lazy = lazy
	if lazy {
		c.pending = nil
	}
	c.mu.Unlock()

	if changed && !lazy {
		// computed outside the lock, the factory may read the controller
		v := factory()

		c.mu.Lock()
		if c.disposed || seq != c.armSeq {
			c.mu.Unlock()
			return
		}
		c.pending = &v
		c.mu.Unlock()
	}

	c.mu.Lock()
	if c.disposed || seq != c.armSeq {
		c.mu.Unlock()
		return
	}
	c.handle = c.timer.Schedule(delay, func() { c.fire(seq) })
	c.mu.Unlock()
}

func (c *Controller) fire(seq uint64) {
	c.mu.Lock()
	if c.disposed || seq != c.armSeq {
		c.mu.Unlock()
		return
	}
	c.handle = nil

	if !c.lazy {
		// a rescheduling without a snapshot change leaves nothing staged,
		// in which case the committed value is already current
		if c.pending == nil {
			c.mu.Unlock()
			return
		}

		c.value = *c.pending
		c.pending = nil
		v := c.value
		onCommit := c.onCommit
		c.mu.Unlock()

		if onCommit != nil {
			onCommit(v)
		}
		return
	}

	factory := c.factory
	c.mu.Unlock()

	// always the factory supplied by the latest Notify, not the one in
	// effect when the timer was armed
	v := factory()

	c.mu.Lock()
	if c.disposed || seq != c.armSeq {
		c.mu.Unlock()
		return
	}
	c.value = v
	onCommit := c.onCommit
	c.mu.Unlock()

	if onCommit != nil {
		onCommit(v)
	}
}

// Value returns the committed value. It never reflects a staged or
// in-flight computation.
func (c *Controller) Value() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Dispose cancels any pending timer. No commit can occur afterwards. Safe
// to call multiple times.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.disposed = true

	c.armSeq++
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
	c.pending = nil
}
