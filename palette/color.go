// Package palette provides the static and animated color schemes of the clock.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Kind discriminates the three color encodings
type Kind uint8

const (
	KindTerm Kind = iota // terminal palette, 0-15
	KindRGB              // 24-bit
	KindANSI             // 256-color index
)

// RGB stores explicit 8-bit color channels
type RGB struct {
	R, G, B uint8
}

// Color is an immutable terminal color in one of the three encodings
type Color struct {
	kind  Kind
	index uint8
	rgb   RGB
}

// termNames follows the order of the 16-color terminal palette
var termNames = [16]string{
	"black", "dark-red", "dark-green", "dark-yellow",
	"dark-blue", "dark-magenta", "dark-cyan", "grey",
	"dark-grey", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
}

// Term returns the terminal palette color i
func Term(i int) (Color, error) {
	if i < 0 || i > 15 {
		return Color{}, fmt.Errorf("terminal color %d: %w", i, ErrRange)
	}
	return Color{kind: KindTerm, index: uint8(i)}, nil
}

// ANSI returns the 256-color palette entry i
func ANSI(i int) (Color, error) {
	if i < 0 || i > 255 {
		return Color{}, fmt.Errorf("ansi color %d: %w", i, ErrRange)
	}
	return Color{kind: KindANSI, index: uint8(i)}, nil
}

// FromRGB wraps a 24-bit color
func FromRGB(c RGB) Color {
	return Color{kind: KindRGB, rgb: c}
}

// ParseHex parses "rrggbb" or the "rgb" shorthand, with an optional leading '#'
func ParseHex(s string) (RGB, error) {
	value := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Expand #XXX colors
	if len(value) == 3 {
		var b strings.Builder
		for i := 0; i < 3; i++ {
			b.WriteByte(value[i])
			b.WriteByte(value[i])
		}
		value = b.String()
	}

	if len(value) != 6 {
		return RGB{}, fmt.Errorf("hex color %q: %w", s, ErrParse)
	}

	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("hex color %q: %w", s, ErrParse)
	}

	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Kind returns the encoding of c
func (c Color) Kind() Kind {
	return c.kind
}

// RGB returns the channels of a 24-bit color, false for indexed colors
func (c Color) RGB() (RGB, bool) {
	return c.rgb, c.kind == KindRGB
}

// Index returns the palette index of a terminal or ANSI color, false for RGB
func (c Color) Index() (int, bool) {
	return int(c.index), c.kind != KindRGB
}

// TCell converts c for use in a tcell style
func (c Color) TCell() tcell.Color {
	switch c.kind {
	case KindRGB:
		return tcell.NewRGBColor(int32(c.rgb.R), int32(c.rgb.G), int32(c.rgb.B))
	default:
		// Palette entries 0-15 are the terminal colors
		return tcell.PaletteColor(int(c.index))
	}
}

// SGR returns the ANSI select-graphic-rendition parameters selecting c as
// foreground, or background when bg is set
func (c Color) SGR(bg bool) []int {
	switch c.kind {
	case KindTerm:
		base := 30
		if c.index >= 8 {
			base = 90 - 8
		}
		if bg {
			base += 10
		}
		return []int{base + int(c.index)}
	case KindANSI:
		if bg {
			return []int{48, 5, int(c.index)}
		}
		return []int{38, 5, int(c.index)}
	default:
		if bg {
			return []int{48, 2, int(c.rgb.R), int(c.rgb.G), int(c.rgb.B)}
		}
		return []int{38, 2, int(c.rgb.R), int(c.rgb.G), int(c.rgb.B)}
	}
}

func (c Color) String() string {
	switch c.kind {
	case KindTerm:
		return termNames[c.index]
	case KindANSI:
		return fmt.Sprintf("ansi(%d)", c.index)
	default:
		return fmt.Sprintf("#%02x%02x%02x", c.rgb.R, c.rgb.G, c.rgb.B)
	}
}
