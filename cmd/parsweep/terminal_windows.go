//go:build windows

package main

import (
	"os"
	"syscall"
	"unsafe"
)

// enableWindowsANSI turns on virtual terminal processing (Windows 10+) so
// ANSI escape sequences in the tables and progress bars render instead of
// printing as garbage.
func enableWindowsANSI() {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	getConsoleMode := kernel32.NewProc("GetConsoleMode")
	setConsoleMode := kernel32.NewProc("SetConsoleMode")

	handle := syscall.Handle(os.Stdout.Fd())

	var mode uint32
	_, _, _ = getConsoleMode.Call(uintptr(handle), uintptr(unsafe.Pointer(&mode)))

	// ENABLE_VIRTUAL_TERMINAL_PROCESSING
	mode |= 0x0004
	_, _, _ = setConsoleMode.Call(uintptr(handle), uintptr(mode))
}
