//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package terminal

// resetTerminalMode is a no-op where termios does not exist
func resetTerminalMode() {}
