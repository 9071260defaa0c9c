//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package core

// resetTerminalMode is a no-op where termios does not exist
func resetTerminalMode() {}
