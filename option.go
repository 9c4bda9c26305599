package evac

import (
	"io"
)

// PreserveDefaultPanic keeps the previously installed hook alive: on every
// dispatch it runs first, before any registered handler, without access to
// the context. With nothing installed beforehand this is the default hook,
// which prints the panic and its stack.
func (b *Builder[T]) PreserveDefaultPanic() *Builder[T] {
	b.preserveDefault = true

	return b
}

// WithLogger routes the builder's own diagnostics (installation, skipped
// handlers) through log instead of the default slog JSON logger. Handler
// failures are not affected: they always go to the error output verbatim.
func (b *Builder[T]) WithLogger(log Logger) *Builder[T] {
	b.log = log

	return b
}

// WithErrorOutput redirects handler-failure reports, which go to stderr by
// default.
func (b *Builder[T]) WithErrorOutput(w io.Writer) *Builder[T] {
	b.out = w

	return b
}
