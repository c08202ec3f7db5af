// Package render draws big-digit glyph strings and text onto a cell canvas.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tlock/glyph"
	"github.com/lixenwraith/tlock/palette"
)

const (
	// advance is the horizontal distance between glyph origins
	advance = glyph.Width + 1
	// colonAdvance is the width counted for a colon, which is drawn tighter
	colonAdvance = glyph.Height
)

// Canvas is the cell grid the renderer writes to; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// TerminalRenderer draws onto a canvas, clipping everything to its bounds
type TerminalRenderer struct {
	canvas Canvas
}

// NewTerminalRenderer creates a renderer for canvas
func NewTerminalRenderer(canvas Canvas) *TerminalRenderer {
	return &TerminalRenderer{canvas: canvas}
}

// Size returns the canvas dimensions in cells
func (r *TerminalRenderer) Size() (width, height int) {
	return r.canvas.Size()
}

// TimeWidth returns the exact width of s drawn with DrawTime
func TimeWidth(s string) int {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	w := 0
	for _, c := range runes {
		if c == ':' {
			w += colonAdvance
		} else {
			w += advance
		}
	}

	// Trailing gap after the last glyph
	if len(runes) == 1 {
		return w - 1
	}
	return w - 2
}

// DrawTime draws s in big digits centered on the canvas
func (r *TerminalRenderer) DrawTime(s string, color palette.Color) {
	width, height := r.canvas.Size()

	x := width/2 - TimeWidth(s)/2
	y := height/2 - glyph.Height/2
	for _, c := range s {
		if c == ':' {
			x--
		}

		r.DrawGlyph(c, x, y, color)
		x += advance

		if c == ':' {
			x--
		}
	}
}

// DrawGlyph draws the glyph for c with its top-left corner at (x, y).
// Lit cells become blanks on a colored background; off-canvas cells are skipped.
func (r *TerminalRenderer) DrawGlyph(c rune, x, y int, color palette.Color) {
	width, height := r.canvas.Size()
	style := tcell.StyleDefault.Background(color.TCell())

	g := glyph.Lookup(c)
	for oy := 0; oy < glyph.Height; oy++ {
		cy := y + oy
		if cy < 0 || cy >= height {
			continue
		}
		for ox := 0; ox < glyph.Width; ox++ {
			cx := x + ox
			if !g[oy][ox] || cx < 0 || cx >= width {
				continue
			}
			r.canvas.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// DrawText writes s in bold at (x, y). Characters left of column 0 or past
// the right edge are dropped.
func (r *TerminalRenderer) DrawText(s string, x, y int, color palette.Color) {
	width, height := r.canvas.Size()
	if y < 0 || y >= height {
		return
	}

	style := tcell.StyleDefault.Foreground(color.TCell()).Bold(true)
	for _, c := range s {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if x >= width {
			return
		}
		if x >= 0 && x+w <= width {
			r.canvas.SetContent(x, y, c, nil, style)
		}
		x += w
	}
}

// CenterX returns the column at which s is horizontally centered
func (r *TerminalRenderer) CenterX(s string) int {
	width, _ := r.canvas.Size()
	return width/2 - runewidth.StringWidth(s)/2
}
