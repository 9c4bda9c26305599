package evac

// PanicError is the error a Group returns when one of its goroutines
// panicked. The panic value and stack are preserved in Info.
type PanicError struct {
	Info *PanicInfo
}

func (e *PanicError) Error() string {
	return "recovered from " + e.Info.String()
}
