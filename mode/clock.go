package mode

import (
	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/go-strftime"
)

// ClockMode shows the wall clock with the date underneath
type ClockMode struct{}

func NewClockMode() *ClockMode {
	return &ClockMode{}
}

// HandleKey ignores everything; the driver handles quitting
func (m *ClockMode) HandleKey(*tcell.EventKey) {}

func (m *ClockMode) Update(width, height int) {}

func (m *ClockMode) Render(f *Frame) {
	_, height := f.Renderer.Size()

	f.Renderer.DrawTime(strftime.Format(f.TimeFormat, f.Now), f.Color)

	date := strftime.Format(f.DateFormat, f.Now)
	f.Renderer.DrawText(date, f.Renderer.CenterX(date), belowDigits(height)-1, f.Color)
}
