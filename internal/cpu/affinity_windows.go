//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinity = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread  = kernel32.NewProc("GetCurrentThread")
)

func available() int {
	return runtime.NumCPU()
}

// pinToCore pins the current OS thread to one CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) error {
	n := runtime.NumCPU()
	core = ((core % n) + n) % n

	handle, _, _ := procGetCurrentThread.Call()

	// Bit N of the affinity mask selects CPU N.
	mask := uintptr(1) << core

	if prev, _, err := procSetThreadAffinity.Call(handle, mask); prev == 0 {
		return err
	}
	return nil
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
