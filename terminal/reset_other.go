//go:build !linux

package terminal

// resetTerminalMode is a no-op where TCGETS is unavailable; tcell's Fini
// remains the primary restoration path
func resetTerminalMode() {}
