package internal

type Effect struct {
	owner *Owner

	fn   func()
	deps []*Signal

	disposed bool
}

func (r *Runtime) NewEffect(fn func()) *Effect {
	e := &Effect{
		owner: r.NewOwner(),
		fn:    fn,
	}

	// dispose with the enclosing owner, if any
	r.OnCleanup(e.Dispose)

	e.run()

	return e
}

func (e *Effect) run() {
	if e.disposed {
		return
	}

	// cleanups registered during the previous run fire before the rerun
	e.owner.flush()
	e.clearDeps()

	GetRuntime().tracker.RunWithEffect(e, e.fn)
}

// Dispose runs pending cleanups and detaches from all dependencies.
// The effect never reruns afterwards. Safe to call multiple times.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	e.clearDeps()
	e.owner.Dispose()
}

// link subscribes the effect to a signal read during the current run.
func (e *Effect) link(dep *Signal) {
	for _, d := range e.deps {
		if d == dep {
			return
		}
	}

	e.deps = append(e.deps, dep)
	dep.subscribe(e)
}

func (e *Effect) clearDeps() {
	for _, dep := range e.deps {
		dep.unsubscribe(e)
	}
	e.deps = nil
}
