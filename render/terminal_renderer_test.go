package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tlock/glyph"
	"github.com/lixenwraith/tlock/palette"
)

// countingCanvas records writes instead of drawing
type countingCanvas struct {
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
	writes        int
}

func newCountingCanvas(w, h int) *countingCanvas {
	return &countingCanvas{
		width:  w,
		height: h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (c *countingCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	c.writes++
	c.cells[[2]int{x, y}] = primary
	c.styles[[2]int{x, y}] = style
}

func (c *countingCanvas) Size() (int, int) {
	return c.width, c.height
}

func (c *countingCanvas) row(y int) string {
	out := make([]rune, c.width)
	for x := range out {
		if r, ok := c.cells[[2]int{x, y}]; ok {
			out[x] = r
		} else {
			out[x] = '.'
		}
	}
	return string(out)
}

func mustTerm(t *testing.T, i int) palette.Color {
	t.Helper()
	c, err := palette.Term(i)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestTimeWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"1", 6},
		{"12", 12},
		{"12:30", 28 + 5 - 2},
		{"00:00:00", 6*7 + 2*5 - 2},
	}

	for _, tt := range tests {
		if got := TimeWidth(tt.in); got != tt.want {
			t.Errorf("TimeWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDrawGlyphWritesLitCells(t *testing.T) {
	canvas := newCountingCanvas(80, 24)
	r := NewTerminalRenderer(canvas)
	red := mustTerm(t, 1)

	r.DrawGlyph('8', 10, 5, red)

	want := 0
	g := glyph.Lookup('8')
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			if g[y][x] {
				want++
				pos := [2]int{10 + x, 5 + y}
				if canvas.cells[pos] != ' ' {
					t.Errorf("Expected blank at %v, got %q", pos, canvas.cells[pos])
				}
				_, bg, _ := canvas.styles[pos].Decompose()
				if bg != red.TCell() {
					t.Errorf("Expected background %v at %v, got %v", red.TCell(), pos, bg)
				}
			}
		}
	}
	if canvas.writes != want {
		t.Errorf("Expected %d writes, got %d", want, canvas.writes)
	}
}

func TestDrawGlyphFullyOffscreen(t *testing.T) {
	canvas := newCountingCanvas(80, 24)
	r := NewTerminalRenderer(canvas)
	c := mustTerm(t, 2)

	for _, pos := range [][2]int{{80, 0}, {200, 10}, {-6, 3}, {10, 24}, {10, -5}, {-100, -100}} {
		r.DrawGlyph('8', pos[0], pos[1], c)
	}
	if canvas.writes != 0 {
		t.Errorf("Expected 0 writes for off-screen glyphs, got %d", canvas.writes)
	}
}

func TestDrawGlyphPartiallyClipped(t *testing.T) {
	canvas := newCountingCanvas(80, 24)
	r := NewTerminalRenderer(canvas)

	// Only the two rightmost columns of '0' land on screen
	r.DrawGlyph('0', -4, 0, mustTerm(t, 3))
	for pos := range canvas.cells {
		if pos[0] < 0 || pos[0] > 1 {
			t.Errorf("Unexpected write at %v", pos)
		}
	}
	if canvas.writes != 2*glyph.Height {
		t.Errorf("Expected %d writes, got %d", 2*glyph.Height, canvas.writes)
	}
}

func TestDrawTimeCentered(t *testing.T) {
	canvas := newCountingCanvas(40, 11)
	r := NewTerminalRenderer(canvas)

	r.DrawTime("1", mustTerm(t, 7))

	// Width 6, centered: x = 20 - 3 = 17, y = 5 - 2 = 3; '1' lights columns 4-5
	for y := 3; y < 8; y++ {
		row := canvas.row(y)
		if row[21] != ' ' || row[22] != ' ' {
			t.Errorf("Row %d: expected lit cells at 21-22, got %q", y, row)
		}
	}
	if canvas.writes != 10 {
		t.Errorf("Expected 10 writes, got %d", canvas.writes)
	}
}

func TestDrawTimeColonSpacing(t *testing.T) {
	canvas := newCountingCanvas(80, 24)
	r := NewTerminalRenderer(canvas)

	r.DrawTime("1:1", mustTerm(t, 7))

	// Width 7+5+7-2 = 17 -> start x = 40-8 = 32.
	// '1' at 32 (lit 36-37), ':' at 38 (lit 40-41), '1' at 44 (lit 48-49)
	row := canvas.row(10) // y = 12-2 = 10, glyph row 0
	for _, x := range []int{36, 37, 48, 49} {
		if row[x] != ' ' {
			t.Errorf("Expected digit cell at %d in %q", x, row)
		}
	}
	colonRow := canvas.row(11)
	for _, x := range []int{40, 41} {
		if colonRow[x] != ' ' {
			t.Errorf("Expected colon cell at %d in %q", x, colonRow)
		}
	}
}

func TestDrawTimeOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	blue := mustTerm(t, 12)
	r := NewTerminalRenderer(screen)
	r.DrawTime("12:30", blue)
	screen.Show()

	cells, w, _ := screen.GetContents()
	lit := 0
	for _, cell := range cells {
		if _, bg, _ := cell.Style.Decompose(); bg == blue.TCell() {
			lit++
		}
	}

	want := 0
	for _, c := range "12:30" {
		g := glyph.Lookup(c)
		for _, row := range g {
			for _, on := range row {
				if on {
					want++
				}
			}
		}
	}
	if lit != want {
		t.Errorf("Expected %d colored cells on a %d-wide screen, got %d", want, w, lit)
	}
}

func TestDrawTextClipping(t *testing.T) {
	tests := []struct {
		name string
		x    int
		want string
	}{
		{"inside", 2, "..hello..."},
		{"left overflow", -2, "llo......."},
		{"right overflow", 7, ".......hel"},
		{"fully left", -5, ".........."},
		{"fully right", 10, ".........."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newCountingCanvas(10, 3)
			r := NewTerminalRenderer(canvas)
			r.DrawText("hello", tt.x, 1, mustTerm(t, 15))
			if got := canvas.row(1); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDrawTextStyle(t *testing.T) {
	canvas := newCountingCanvas(10, 3)
	r := NewTerminalRenderer(canvas)
	green := mustTerm(t, 10)

	r.DrawText("a", 0, 0, green)
	fg, _, attr := canvas.styles[[2]int{0, 0}].Decompose()
	if fg != green.TCell() {
		t.Errorf("Expected foreground %v, got %v", green.TCell(), fg)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("Expected bold text")
	}
}

func TestDrawTextOffscreenRows(t *testing.T) {
	canvas := newCountingCanvas(10, 3)
	r := NewTerminalRenderer(canvas)
	r.DrawText("hello", 0, -1, mustTerm(t, 1))
	r.DrawText("hello", 0, 3, mustTerm(t, 1))
	if canvas.writes != 0 {
		t.Errorf("Expected no writes, got %d", canvas.writes)
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	canvas := newCountingCanvas(5, 1)
	r := NewTerminalRenderer(canvas)

	// Each CJK rune takes two cells; the third one does not fit
	r.DrawText("日本語", 0, 0, mustTerm(t, 1))
	if canvas.writes != 2 {
		t.Errorf("Expected 2 writes, got %d", canvas.writes)
	}
	if canvas.cells[[2]int{2, 0}] != '本' {
		t.Errorf("Expected second rune at column 2, got %q", canvas.cells[[2]int{2, 0}])
	}
}

func TestCenterX(t *testing.T) {
	r := NewTerminalRenderer(newCountingCanvas(80, 24))
	if x := r.CenterX("[PAUSE]"); x != 37 {
		t.Errorf("Expected 37, got %d", x)
	}
}
