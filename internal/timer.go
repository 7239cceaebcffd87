package internal

import "time"

// Timer is the delayed-callback primitive the debounce controller schedules
// against. Implementations must run the callback at most once, and must make
// Cancel a no-op on handles that already fired or were already cancelled.
type Timer interface {
	Schedule(delay time.Duration, fn func()) TimerHandle
}

type TimerHandle interface {
	Cancel()
}

// SystemTimer schedules on the Go runtime timer wheel. The callback runs on
// its own goroutine.
func SystemTimer() Timer {
	return systemTimer{}
}

type systemTimer struct{}

func (systemTimer) Schedule(delay time.Duration, fn func()) TimerHandle {
	return systemHandle{time.AfterFunc(delay, fn)}
}

type systemHandle struct {
	t *time.Timer
}

func (h systemHandle) Cancel() {
	h.t.Stop()
}
