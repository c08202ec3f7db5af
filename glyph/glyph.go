// Package glyph holds the compiled-in block font used for the large clock digits.
package glyph

const (
	// Width is the number of columns of every glyph
	Width = 6
	// Height is the number of rows of every glyph
	Height = 5
)

// Glyph is a fixed on/off cell grid, indexed [row][column]
type Glyph [Height][Width]bool

const (
	o = false
	x = true
)

// Lookup returns the glyph for r, or the error glyph when r has no entry
func Lookup(r rune) Glyph {
	if g, ok := table[r]; ok {
		return g
	}
	return errorGlyph
}

// Supported reports whether r has a dedicated glyph
func Supported(r rune) bool {
	_, ok := table[r]
	return ok
}

var table = map[rune]Glyph{
	'0': {
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, o, o, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
	},
	'1': {
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
	},
	'2': {
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{x, x, x, x, x, x},
		{x, x, o, o, o, o},
		{x, x, x, x, x, x},
	},
	'3': {
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{x, x, x, x, x, x},
	},
	'4': {
		{x, x, o, o, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
	},
	'5': {
		{x, x, x, x, x, x},
		{x, x, o, o, o, o},
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{x, x, x, x, x, x},
	},
	'6': {
		{x, x, x, x, x, x},
		{x, x, o, o, o, o},
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
	},
	'7': {
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
		{o, o, o, o, x, x},
	},
	'8': {
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
	},
	'9': {
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
		{o, o, o, o, x, x},
		{x, x, x, x, x, x},
	},
	':': {
		{o, o, o, o, o, o},
		{o, o, x, x, o, o},
		{o, o, o, o, o, o},
		{o, o, x, x, o, o},
		{o, o, o, o, o, o},
	},
	'-': {
		{o, o, o, o, o, o},
		{o, o, o, o, o, o},
		{o, x, x, x, x, o},
		{o, o, o, o, o, o},
		{o, o, o, o, o, o},
	},
	' ': {},
	'A': {
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, o, o, x, x},
	},
	'P': {
		{x, x, x, x, x, x},
		{x, x, o, o, x, x},
		{x, x, x, x, x, x},
		{x, x, o, o, o, o},
		{x, x, o, o, o, o},
	},
	'M': {
		{x, x, x, x, x, x},
		{x, x, o, x, o, x},
		{x, x, o, x, o, x},
		{x, x, o, x, o, x},
		{x, x, o, x, o, x},
	},
}

var errorGlyph = Glyph{
	{x, x, o, o, x, x},
	{o, x, x, x, x, o},
	{o, o, x, x, o, o},
	{o, x, x, x, x, o},
	{x, x, o, o, x, x},
}
