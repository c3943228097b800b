//go:build !windows

package main

// enableWindowsANSI is a no-op on Unix systems, whose terminals handle ANSI
// escape sequences natively.
func enableWindowsANSI() {}
