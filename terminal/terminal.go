package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode is the color capability the screen is driven with
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ResolveColorMode maps a --color flag value to a mode, detecting on "auto"
func ResolveColorMode(flag string) (ColorMode, error) {
	switch strings.ToLower(flag) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return 0, fmt.Errorf("unknown color mode %q (want auto, truecolor or 256)", flag)
	}
}

// Open creates a full-screen tcell screen: alternate buffer, raw input, hidden cursor.
// The caller must call Fini on every exit path.
func Open(mode ColorMode) (tcell.Screen, error) {
	// tcell reads these when the screen is created
	switch mode {
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// PollEvents forwards screen events into a buffered channel until the screen
// is finalized or done is closed, letting the frame loop drain input without
// blocking. The channel is closed when the poller exits.
func PollEvents(screen tcell.Screen, buffer int, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// EmergencyReset restores a sane terminal after a crash, when Fini may not have run
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
