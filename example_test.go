package evac_test

import (
	"os"
	"path/filepath"

	"github.com/evac-go/evac"
)

// Register a handler that persists the crash dump to a caller-supplied
// path, keeping the default panic report around as the first phase.
func ExampleNew() {
	dumpPath := filepath.Join(os.TempDir(), "crash.dump")

	evac.New[string]().
		PreserveDefaultPanic().
		WithHandler(evac.HandlerFunc[string](func(info *evac.PanicInfo, path *string) error {
			return os.WriteFile(*path, info.Stack, 0o600)
		})).
		Register(&dumpPath)
}
