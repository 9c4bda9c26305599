// Package evac composes multiple panic handlers into the single
// process-wide panic hook. The process has one hook slot, but independent
// parts of a program each want to react to a crash: write a dump, send
// telemetry, release a lock file. A Builder collects handlers and installs
// them as one hook; handlers run in registration order and share a mutable
// context value, so one handler can compute something a later handler
// persists.
//
//	evac.New[string]().
//		WithHandler(evac.HandlerFunc[string](func(info *evac.PanicInfo, path *string) error {
//			return os.WriteFile(*path, info.Stack, 0o600)
//		})).
//		Register(&dumpPath)
package evac

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Builder assembles a series of panic handlers into a single hook.
type Builder[T any] struct {
	handlers        []Handler[T]
	preserveDefault bool

	log Logger
	out io.Writer
}

// New constructs an empty Builder: no handlers, previous hook not preserved.
func New[T any]() *Builder[T] {
	return &Builder[T]{
		log: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
		out: os.Stderr,
	}
}

// WithHandler appends a handler. Handlers are executed in the order they
// are registered in. They take a pointer to the context value so handlers
// can add to the context as they execute, enabling reuse of values between
// handlers.
func (b *Builder[T]) WithHandler(h Handler[T]) *Builder[T] {
	if h == nil {
		b.log.Warn("nil handler registered")

		return b
	}

	b.handlers = append(b.handlers, h)

	return b
}

// Register freezes the handler list and installs it as the process-wide
// panic hook, replacing whatever hook was active. If PreserveDefaultPanic
// was requested, the previous hook is taken first and runs before any
// registered handler on every dispatch. ctx is bound to the installed hook
// and handed to each handler in turn.
//
// Registration itself cannot fail; only later dispatch can encounter
// handler errors.
func (b *Builder[T]) Register(ctx *T) {
	c := &chain[T]{
		handlers: b.handlers,
		ctx:      ctx,
		log:      b.log,
		out:      b.out,
	}

	// If we're preserving the previous hook, take it for use in ours.
	if b.preserveDefault {
		c.prior = TakeHook()
	}

	SetHook(c.invoke)

	b.log.Debug("panic hook installed",
		"handlers", len(b.handlers),
		"preserve_default", b.preserveDefault,
	)
}

// chain is the frozen form of a Builder: the installed hook's state.
type chain[T any] struct {
	handlers []Handler[T]
	prior    Hook
	ctx      *T

	// busy asserts that dispatches do not overlap. The hook is shared
	// across goroutines, but the context is handed to handlers without a
	// lock; a single panicking goroutine at a time is a precondition.
	busy atomic.Bool

	log Logger
	out io.Writer
}

// invoke runs one full pass over the chain: the preserved prior hook
// first, then every handler in registration order. A handler error is
// reported to the error output and the next handler still runs; no
// failure escapes the hook.
func (c *chain[T]) invoke(info *PanicInfo) {
	if !c.busy.CompareAndSwap(false, true) {
		panic("evac: overlapping panic dispatch on shared context")
	}
	defer c.busy.Store(false)

	if c.prior != nil {
		c.prior(info)
	}

	for _, h := range c.handlers {
		if err := h.Handle(info, c.ctx); err != nil {
			fmt.Fprintln(c.out, "Error encountered in panic handler:")
			fmt.Fprintln(c.out, err)
		}
	}
}
