//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// available counts the CPUs in the current scheduling affinity mask, which
// reflects taskset and cgroup restrictions that runtime.NumCPU may not.
func available() int {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err == nil {
		if n := mask.Count(); n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

// pinToCore pins the current OS thread to one CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) error {
	n := runtime.NumCPU()
	core = ((core % n) + n) % n

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// PinWorker locks the calling goroutine to an OS thread and pins that thread
// to a core derived from workerID. Returns the cleanup to defer.
func PinWorker(workerID int) func() {
	runtime.LockOSThread()
	_ = pinToCore(workerID)

	return func() {
		runtime.UnlockOSThread()
	}
}
