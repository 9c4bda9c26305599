package evac

// Handler is one registered reaction to a panic. It gets the read-only
// PanicInfo and mutable access to the shared context value, and may return
// an error; errors are reported to the chain's error output and never stop
// the handlers registered after it.
type Handler[T any] interface {
	Handle(info *PanicInfo, ctx *T) error
}

type HandlerFunc[T any] func(info *PanicInfo, ctx *T) error

func (f HandlerFunc[T]) Handle(info *PanicInfo, ctx *T) error {
	return f(info, ctx)
}
