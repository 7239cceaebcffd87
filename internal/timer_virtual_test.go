package internal

import "time"

// virtualTimer drives scheduled callbacks on a virtual clock. Advancing the
// clock fires due callbacks in time order (insertion order on ties), so
// debounce properties can be asserted deterministically.
type virtualTimer struct {
	now    time.Duration
	seq    int
	events []*virtualEvent
}

type virtualEvent struct {
	due       time.Duration
	seq       int
	fn        func()
	cancelled bool
	fired     bool
}

func (t *virtualTimer) Schedule(delay time.Duration, fn func()) TimerHandle {
	t.seq++
	ev := &virtualEvent{due: t.now + delay, seq: t.seq, fn: fn}
	t.events = append(t.events, ev)
	return ev
}

func (ev *virtualEvent) Cancel() {
	ev.cancelled = true
}

func (t *virtualTimer) Advance(d time.Duration) {
	target := t.now + d

	for {
		next := t.nextDue(target)
		if next == nil {
			break
		}

		t.now = next.due
		next.fired = true
		next.fn()
	}

	t.now = target
}

func (t *virtualTimer) nextDue(target time.Duration) *virtualEvent {
	var best *virtualEvent
	for _, ev := range t.events {
		if ev.cancelled || ev.fired || ev.due > target {
			continue
		}

		if best == nil || ev.due < best.due || (ev.due == best.due && ev.seq < best.seq) {
			best = ev
		}
	}

	return best
}

func (t *virtualTimer) pending() int {
	count := 0
	for _, ev := range t.events {
		if !ev.cancelled && !ev.fired {
			count++
		}
	}

	return count
}
