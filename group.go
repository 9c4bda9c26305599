package evac

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Group is an errgroup.Group whose goroutines report panics through the
// installed hook instead of crashing the process. A panic is dispatched to
// the hook and then surfaced from Wait as a *PanicError, so the group's
// caller decides whether the program dies.
//
// The zero value is ready to use.
type Group struct {
	group errgroup.Group

	// dispatchMu serializes hook dispatch across the group's goroutines;
	// the installed chain hands its context to handlers without a lock
	// and must not be entered concurrently.
	dispatchMu sync.Mutex
}

// Go runs fn in a new goroutine, guarded the same way Recover guards a
// goroutine, except that the panic becomes an error instead of re-raising.
func (g *Group) Go(fn func() error) {
	g.group.Go(func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			info := Capture(r)

			g.dispatchMu.Lock()
			Dispatch(info)
			g.dispatchMu.Unlock()

			err = &PanicError{Info: info}
		}()

		return fn()
	})
}

// Wait blocks until all goroutines started with Go have returned. It
// returns the first error, which is a *PanicError if that goroutine
// panicked.
func (g *Group) Wait() error {
	return g.group.Wait()
}
