package mode

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tlock/timing"
)

const maxLapRows = 10

// ChronoMode is a stopwatch with a scrollable lap list
type ChronoMode struct {
	chrono *timing.Chronometer
	laps   timing.Laps
}

// NewChronoMode returns a running stopwatch
func NewChronoMode(clock timing.TimeProvider) *ChronoMode {
	m := &ChronoMode{chrono: timing.NewChronometer(clock)}
	m.chrono.Start()
	return m
}

func (m *ChronoMode) HandleKey(ev *tcell.EventKey) {
	switch {
	case isRune(ev, ' '):
		m.chrono.TogglePause()
	case isRune(ev, 'r'):
		m.chrono.Reset()
		m.laps.Clear()
	case isRune(ev, 'l'):
		m.laps.Record(m.chrono.Elapsed())
	case ev.Key() == tcell.KeyDown:
		m.laps.ScrollDown()
	case ev.Key() == tcell.KeyUp:
		m.laps.ScrollUp()
	case ev.Key() == tcell.KeyPgDn:
		m.laps.ScrollBottom()
	case ev.Key() == tcell.KeyPgUp:
		m.laps.ScrollTop()
	}
}

// Update keeps the scroll offset within the rows that fit on screen
func (m *ChronoMode) Update(width, height int) {
	m.laps.Clamp(lapRows(height))
}

func (m *ChronoMode) Render(f *Frame) {
	_, height := f.Renderer.Size()

	f.Renderer.DrawTime(timing.FormatDuration(m.chrono.Elapsed()), f.Color)

	top := belowDigits(height)
	m.laps.Newest(lapRows(height), func(row, number int, lap timing.Lapse) {
		line := FormatLap(number, lap)
		f.Renderer.DrawText(line, f.Renderer.CenterX(line), top+row, f.Color)
	})

	if m.chrono.IsPaused() {
		drawLabel(f, pauseLabel, height)
	}
}

// Elapsed returns the stopwatch reading
func (m *ChronoMode) Elapsed() time.Duration {
	return m.chrono.Elapsed()
}

// Laps exposes the recorded laps
func (m *ChronoMode) Laps() *timing.Laps {
	return &m.laps
}

// FormatLap renders one lap list row
func FormatLap(number int, lap timing.Lapse) string {
	return fmt.Sprintf("#%02d  --  +%s  --  %s", number, timing.FormatDuration(lap.Delta), timing.FormatDuration(lap.Time))
}

func lapRows(height int) int {
	return max(0, min(maxLapRows, height-belowDigits(height)-1))
}
