package mode

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tlock/timing"
)

const (
	pauseLabel    = "[PAUSE]"
	finishedLabel = "[FINISHED]"
)

// CountdownMode counts down from a requested duration. Countdown and Timer
// both use it.
type CountdownMode struct {
	countdown *timing.Countdown
	alarm     Alarm
	rang      bool
}

// NewCountdownMode returns a running countdown of d; alarm may be nil
func NewCountdownMode(clock timing.TimeProvider, d time.Duration, alarm Alarm) *CountdownMode {
	return &CountdownMode{
		countdown: timing.NewCountdown(clock, d),
		alarm:     alarm,
	}
}

func (m *CountdownMode) HandleKey(ev *tcell.EventKey) {
	switch {
	case isRune(ev, ' '):
		m.countdown.TogglePause()
	case isRune(ev, 'r'):
		m.countdown.Reset()
		m.rang = false
	}
}

// Update rings the alarm once when a running countdown finishes
func (m *CountdownMode) Update(width, height int) {
	if m.rang || m.countdown.IsPaused() || !m.countdown.IsFinished() {
		return
	}

	m.rang = true
	log.Printf("countdown of %s finished", m.countdown.Duration())
	if m.alarm != nil {
		m.alarm.Ring()
	}
}

func (m *CountdownMode) Render(f *Frame) {
	_, height := f.Renderer.Size()

	f.Renderer.DrawTime(timing.FormatDuration(m.countdown.TimeLeft()), f.Color)

	switch {
	case m.countdown.IsPaused():
		drawLabel(f, pauseLabel, height)
	case m.countdown.IsFinished():
		drawLabel(f, finishedLabel, height)
	}
}

// TimeLeft returns the countdown reading
func (m *CountdownMode) TimeLeft() time.Duration {
	return m.countdown.TimeLeft()
}

// drawLabel writes a status label centered above the digits
func drawLabel(f *Frame, label string, height int) {
	f.Renderer.DrawText(label, f.Renderer.CenterX(label), aboveDigits(height), f.Color)
}
