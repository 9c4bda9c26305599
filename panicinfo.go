package evac

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// PanicInfo is a read-only snapshot of a panic, passed to the installed
// hook and to every registered handler.
type PanicInfo struct {
	// Value is the value the program panicked with.
	Value any

	// Stack is the stack of the panicking goroutine, captured at recovery.
	Stack []byte

	// File and Line point at the panic site, best-effort. Both are zero
	// when the site could not be resolved.
	File string
	Line int
}

// Capture builds a PanicInfo for v from inside a deferred recover point.
// Use it when wiring evac into your own recovery code instead of Recover.
func Capture(v any) *PanicInfo {
	info := &PanicInfo{
		Value: v,
		Stack: debug.Stack(),
	}
	info.File, info.Line = panicSite()

	return info
}

func (pi *PanicInfo) String() string {
	if pi.File == "" {
		return fmt.Sprintf("panic: %v", pi.Value)
	}

	return fmt.Sprintf("panic at %s:%d: %v", pi.File, pi.Line, pi.Value)
}

// panicSite walks up the stack past the runtime's panic machinery and
// this package's own frames to find the frame that panicked.
func panicSite() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()

		if !strings.HasPrefix(frame.Function, "runtime.") &&
			!strings.HasPrefix(frame.Function, "github.com/evac-go/evac.") {
			return frame.File, frame.Line
		}

		if !more {
			return "", 0
		}
	}
}
