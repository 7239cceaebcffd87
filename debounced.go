package settle

import (
	"time"

	"github.com/settle-go/settle/internal"
)

type Options struct {
	// Delay is the quiet period to wait after the last change before the
	// recomputed value becomes visible. Must not be negative.
	Delay time.Duration

	// Lazy defers the recomputation itself to the end of the quiet period.
	// By default the factory runs eagerly on every change and only the
	// visible update is delayed.
	Lazy bool
}

// Delay is sugar for Options with only a quiet period.
func Delay(d time.Duration) Options {
	return Options{Delay: d}
}

type Debounced[T any] struct {
	ctrl *internal.Controller
	out  *internal.Signal
	opts Options
}

// NewDebounced creates a debounced value driven by explicit Notify calls.
// The first value is computed synchronously from factory; it is never
// debounced since there is no prior value to show.
//
// Use NewDebouncedEffect to drive the value from tracked signals instead.
func NewDebounced[T any](factory func() T, snapshot []any, opts Options) *Debounced[T] {
	d := &Debounced[T]{opts: opts}
	d.ctrl = internal.NewController(internal.Config{
		Factory:  func() any { return factory() },
		Snapshot: internal.Snapshot(snapshot),
		Delay:    opts.Delay,
		Lazy:     opts.Lazy,
	})

	return d
}

// Notify tells the controller about the current update cycle. The factory
// reference is refreshed unconditionally; a changed snapshot (or a changed
// delay via NotifyWith) restarts the quiet period.
func (d *Debounced[T]) Notify(snapshot []any, factory func() T) {
	d.NotifyWith(snapshot, factory, d.opts)
}

// NotifyWith is Notify with per-call options.
func (d *Debounced[T]) NotifyWith(snapshot []any, factory func() T, opts Options) {
	d.ctrl.Notify(internal.Snapshot(snapshot), func() any { return factory() }, opts.Delay, opts.Lazy)
}

// Value returns the committed value without tracking.
func (d *Debounced[T]) Value() T {
	return as[T](d.ctrl.Value())
}

// Read returns the committed value, tracking the dependency if the value is
// effect-driven and the caller is within a reactive context.
func (d *Debounced[T]) Read() T {
	if d.out != nil {
		return as[T](d.out.Read())
	}

	return d.Value()
}

// Dispose cancels any pending update. No commit can occur afterwards.
// Safe to call multiple times.
func (d *Debounced[T]) Dispose() {
	d.ctrl.Dispose()
}

// NewDebouncedEffect creates a debounced value recomputed by factory whenever
// the snapshot returned by deps changes. Signals read inside deps are
// tracked, so writing them renotifies the controller; reads inside factory
// are not tracked.
//
// The committed value is held in a signal, so Read is reactive. If called
// within an owner, the debounced value is disposed with it.
func NewDebouncedEffect[T any](factory func() T, deps func() []any, opts Options) *Debounced[T] {
	d := &Debounced[T]{opts: opts}

	compute := func() any {
		return Untrack(func() any { return any(factory()) })
	}

	NewEffect(func() {
		snapshot := internal.Snapshot(deps())

		if d.ctrl == nil {
			d.ctrl = internal.NewController(internal.Config{
				Factory:  compute,
				Snapshot: snapshot,
				Delay:    opts.Delay,
				Lazy:     opts.Lazy,
				OnCommit: func(v any) { d.out.Write(v) },
			})
			d.out = internal.GetRuntime().NewSignal(d.ctrl.Value())
			return
		}

		d.ctrl.Notify(snapshot, compute, opts.Delay, opts.Lazy)
	})

	OnCleanup(d.Dispose)

	return d
}
