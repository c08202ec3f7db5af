package palette

// Computable is a cyclic sequence of colors advanced once per frame
type Computable struct {
	values  []Color
	current int
}

// Static returns a single-entry scheme that never changes
func Static(c Color) *Computable {
	return &Computable{values: []Color{c}}
}

// NewComputable returns a scheme cycling over values, which must be non-empty
func NewComputable(values []Color) (*Computable, error) {
	if len(values) == 0 {
		return nil, ErrMissingKey
	}
	owned := make([]Color, len(values))
	copy(owned, values)
	return &Computable{values: owned}, nil
}

// Update advances to the next color, wrapping at the end
func (c *Computable) Update() {
	c.current = (c.current + 1) % len(c.values)
}

// Value returns the current color
func (c *Computable) Value() Color {
	return c.values[c.current]
}

// Len returns the number of colors in the cycle
func (c *Computable) Len() int {
	return len(c.values)
}
