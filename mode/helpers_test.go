package mode

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tlock/palette"
	"github.com/lixenwraith/tlock/render"
	"github.com/lixenwraith/tlock/timing"
)

const (
	screenWidth  = 80
	screenHeight = 24
)

var testStart = time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(screenWidth, screenHeight)
	return screen
}

func newMockClock() *timing.MockTimeProvider {
	return timing.NewMockTimeProvider(testStart)
}

func testColor(t *testing.T) palette.Color {
	t.Helper()
	c, err := palette.Term(10)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// renderFrame updates and draws m onto a fresh simulation screen
func renderFrame(t *testing.T, m Mode) tcell.SimulationScreen {
	t.Helper()
	screen := newTestScreen(t)
	w, h := screen.Size()
	m.Update(w, h)
	m.Render(testFrame(t, screen))
	screen.Show()
	return screen
}

func testFrame(t *testing.T, screen tcell.Screen) *Frame {
	t.Helper()
	return &Frame{
		Renderer:   render.NewTerminalRenderer(screen),
		Color:      testColor(t),
		Now:        testStart,
		TimeFormat: "%H:%M:%S",
		DateFormat: "%Y-%m-%d",
	}
}

func screenRows(screen tcell.SimulationScreen) []string {
	cells, w, h := screen.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

// litCells counts cells painted with c as background
func litCells(screen tcell.SimulationScreen, c palette.Color) int {
	cells, _, _ := screen.GetContents()
	n := 0
	for _, cell := range cells {
		if _, bg, _ := cell.Style.Decompose(); bg == c.TCell() {
			n++
		}
	}
	return n
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}
