// Package mode holds the per-frame behavior of each display mode and the
// loop that drives them.
package mode

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tlock/glyph"
	"github.com/lixenwraith/tlock/palette"
	"github.com/lixenwraith/tlock/render"
	"github.com/lixenwraith/tlock/timing"
)

// Kind selects what the big digits show
type Kind int

const (
	Clock Kind = iota
	Chrono
	Countdown
	Timer
)

func (k Kind) String() string {
	switch k {
	case Clock:
		return "clock"
	case Chrono:
		return "chrono"
	case Countdown:
		return "countdown"
	case Timer:
		return "timer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NeedsDuration reports whether the kind counts down from a requested duration
func (k Kind) NeedsDuration() bool {
	return k == Countdown || k == Timer
}

//go:generate mockgen -destination=mock_alarm_test.go -package=mode github.com/lixenwraith/tlock/mode Alarm

// Alarm is notified when a countdown reaches zero
type Alarm interface {
	Ring()
}

// Mode is one display mode. HandleKey and Update mutate state, Render only reads it.
type Mode interface {
	HandleKey(ev *tcell.EventKey)
	Update(width, height int)
	Render(f *Frame)
}

// Frame is everything a mode needs to draw one frame
type Frame struct {
	Renderer   *render.TerminalRenderer
	Color      palette.Color
	Now        time.Time
	TimeFormat string
	DateFormat string
}

// New creates the mode for kind. duration is ignored by Clock and Chrono;
// alarm may be nil.
func New(kind Kind, clock timing.TimeProvider, duration time.Duration, alarm Alarm) (Mode, error) {
	switch kind {
	case Clock:
		return NewClockMode(), nil
	case Chrono:
		return NewChronoMode(clock), nil
	case Countdown, Timer:
		if duration < 0 {
			return nil, fmt.Errorf("%s: negative duration %s", kind, duration)
		}
		return NewCountdownMode(clock, duration, alarm), nil
	default:
		return nil, fmt.Errorf("unknown mode %s", kind)
	}
}

// Layout rows shared by the modes, relative to the big-digit block
func belowDigits(height int) int {
	return height/2 + glyph.Height/2 + 2
}

func aboveDigits(height int) int {
	return belowDigits(height) - glyph.Height - glyph.Height/2
}

func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0
}
