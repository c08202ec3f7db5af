// Package terminal opens the full-screen tcell display used by the clock modes
// and restores the terminal when things go wrong.
//
// Features:
//   - Color mode detection (true color or 256-color) from the environment
//   - Non-blocking event delivery through a channel fed by a poller goroutine
//   - Best-effort restoration of cooked mode and the main screen after a panic
package terminal
