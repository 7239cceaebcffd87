package internal

type Owner struct {
	// cleanup functions to be called when the owner is disposed
	cleanups []func()

	disposed bool
}

func (r *Runtime) NewOwner() *Owner {
	return &Owner{
		cleanups: make([]func(), 0),
	}
}

func (o *Owner) Run(fn func()) {
	r := GetRuntime()
	r.tracker.RunWithOwner(o, fn)
}

func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		return
	}

	o.cleanups = append(o.cleanups, fn)
}

// Dispose runs all registered cleanups once. Safe to call multiple times.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	o.flush()
}

// flush runs and clears the pending cleanups without disposing the owner,
// so it can keep collecting cleanups for the next cycle.
func (o *Owner) flush() {
	cleanups := o.cleanups
	o.cleanups = nil

	for i := 0; i < len(cleanups); i++ {
		cleanups[i]()
	}
}
