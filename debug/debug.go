// Package debug prints the resolved configuration as plain text.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lixenwraith/tlock/config"
	"github.com/lixenwraith/tlock/palette"
)

// SwatchWidth is the number of cells used to preview a single color
const SwatchWidth = 50

const halfBlock = "▌"

var labelColor = color.New(color.Bold)

// Print writes version, frame rate, formats and a color scheme preview to w.
// With downsample set, RGB colors are previewed through the 256-color palette.
// Previewing a gradient advances cfg.Color.
func Print(w io.Writer, version string, cfg *config.Config, downsample bool) error {
	fields := []struct {
		label string
		value any
	}{
		{"Version", version},
		{"FPS", cfg.FPS},
		{"Time format", cfg.TimeFormat},
		{"Date format", cfg.DateFormat},
	}
	for _, f := range fields {
		if _, err := labelColor.Fprint(w, f.label+": "); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, f.value); err != nil {
			return err
		}
	}

	if _, err := labelColor.Fprint(w, "Color scheme: "); err != nil {
		return err
	}
	if err := printScheme(w, cfg.Color, downsample); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// printScheme draws one long swatch for a static color. A gradient is drawn
// two entries per cell, left half as foreground and right half as background.
func printScheme(w io.Writer, scheme *palette.Computable, downsample bool) error {
	next := func() palette.Color {
		c := scheme.Value()
		scheme.Update()
		if downsample {
			return c.Downsample()
		}
		return c
	}

	if scheme.Len() == 1 {
		_, err := attrs(next().SGR(true)).Fprint(w, strings.Repeat(" ", SwatchWidth))
		return err
	}

	for i := 0; i < scheme.Len()/2; i++ {
		fg := next()
		bg := next()

		params := append(fg.SGR(false), bg.SGR(true)...)
		if _, err := attrs(params).Fprint(w, halfBlock); err != nil {
			return err
		}
	}
	return nil
}

func attrs(params []int) *color.Color {
	values := make([]color.Attribute, len(params))
	for i, p := range params {
		values[i] = color.Attribute(p)
	}
	return color.New(values...)
}
