package evac

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Hook is the process-wide panic callback. The process has a single hook
// slot; SetHook replaces it and the last writer wins.
type Hook func(*PanicInfo)

// PanicOutput is where the default hook writes its report.
var PanicOutput io.Writer = os.Stderr

var (
	hookMu    sync.RWMutex
	installed Hook
)

// SetHook installs h as the process-wide panic hook, replacing whatever
// hook was active before. The change is observable from any goroutine
// immediately after return.
func SetHook(h Hook) {
	hookMu.Lock()
	installed = h
	hookMu.Unlock()
}

// TakeHook removes and returns the currently installed hook, leaving the
// default hook in place. If no hook was installed, the default hook itself
// is returned, so the result is always safe to invoke.
func TakeHook() Hook {
	hookMu.Lock()
	defer hookMu.Unlock()

	h := installed
	installed = nil

	if h == nil {
		return defaultHook
	}

	return h
}

// Installed reports whether a non-default hook is currently active.
func Installed() bool {
	hookMu.RLock()
	defer hookMu.RUnlock()

	return installed != nil
}

// Dispatch invokes the currently installed hook with info. Programs call it
// from their own recover points; Recover and Group call it internally.
func Dispatch(info *PanicInfo) {
	hookMu.RLock()
	h := installed
	hookMu.RUnlock()

	if h == nil {
		h = defaultHook
	}

	h(info)
}

// Recover is meant to be deferred as the first statement of main and of
// every goroutine that should report through the installed hook:
//
//	go func() {
//		defer evac.Recover()
//		work()
//	}()
//
// On panic it dispatches a PanicInfo to the installed hook and then panics
// again with the original value, so the process still dies the way an
// unhandled panic dies.
func Recover() {
	r := recover()
	if r == nil {
		return
	}

	Dispatch(Capture(r))

	panic(r)
}

// defaultHook is what runs when nothing was registered: print the panic
// and its stack, the way an unhandled panic would be reported.
func defaultHook(info *PanicInfo) {
	fmt.Fprintf(PanicOutput, "%s\n\n%s", info, info.Stack)
}
