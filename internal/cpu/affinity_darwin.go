//go:build darwin

package cpu

import "runtime"

func available() int {
	return runtime.NumCPU()
}

// PinWorker locks the calling goroutine to an OS thread. Core pinning is not
// available on macOS, so this only stabilizes which thread the worker runs on.
func PinWorker(workerID int) func() {
	runtime.LockOSThread()

	return func() {
		runtime.UnlockOSThread()
	}
}
