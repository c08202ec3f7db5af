package palette

import "fmt"

// clamp01 bounds t to [0, 1]
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// lerp interpolates one channel, truncating toward a
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*clamp01(t))
}

// Mirror appends the reversed keys minus their first element, so a cycle over
// the result runs forward then back: [a b c] becomes [a b c b a]
func Mirror(keys []RGB) []RGB {
	out := make([]RGB, 0, 2*len(keys))
	out = append(out, keys...)
	for i := len(keys) - 2; i >= 0; i-- {
		out = append(out, keys[i])
	}
	return out
}

// GenerateGradient interpolates between adjacent keys, producing roughly steps
// colors in total. With loop set the sequence is mirrored first.
// A single key, or steps <= 0, yields a static scheme.
func GenerateGradient(keys []RGB, steps int, loop bool) (*Computable, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("gradient keys: %w", ErrMissingKey)
	}
	if len(keys) == 1 || steps <= 0 {
		return Static(FromRGB(keys[0])), nil
	}

	if loop {
		keys = Mirror(keys)
	}

	segments := len(keys) - 1
	perSegment := max(1, steps/segments)

	values := make([]Color, 0, segments*perSegment)
	for i := 0; i < segments; i++ {
		from, to := keys[i], keys[i+1]
		for step := 1; step <= perSegment; step++ {
			t := float64(step) / float64(perSegment)
			values = append(values, FromRGB(RGB{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
			}))
		}
	}

	return &Computable{values: values}, nil
}
