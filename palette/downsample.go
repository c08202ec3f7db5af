package palette

// Levels of the xterm 6x6x6 color cube (indices 16-231)
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

const (
	cubeStart = 16
	grayStart = 232
	grayEnd   = 255
)

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearestCube returns the cube coordinate 0-5 closest to v
func nearestCube(v uint8) int {
	best, bestDist := 0, absInt(int(v)-cubeLevels[0])
	for i := 1; i < len(cubeLevels); i++ {
		if d := absInt(int(v) - cubeLevels[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// To256 returns the xterm-256 palette index nearest to c. Near-gray colors
// may map onto the grayscale ramp (232-255, levels 8-238).
func To256(c RGB) int {
	r, g, b := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
	cube := cubeStart + 36*r + 6*g + b

	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	spread := max(absInt(int(c.R)-gray), absInt(int(c.G)-gray), absInt(int(c.B)-gray))
	if spread >= 10 {
		return cube
	}

	switch {
	case gray < 4:
		return cubeStart
	case gray > 243:
		return cubeStart + 215
	}

	grayIdx := min(grayStart+max(gray-8, 0)/10, grayEnd)
	level := 8 + (grayIdx-grayStart)*10
	grayDist := absInt(int(c.R)-level) + absInt(int(c.G)-level) + absInt(int(c.B)-level)
	cubeDist := absInt(int(c.R)-cubeLevels[r]) + absInt(int(c.G)-cubeLevels[g]) + absInt(int(c.B)-cubeLevels[b])
	if grayDist < cubeDist {
		return grayIdx
	}
	return cube
}

// Downsample maps an RGB color to its nearest ANSI-256 color; indexed
// colors are returned unchanged
func (c Color) Downsample() Color {
	if c.kind != KindRGB {
		return c
	}
	return Color{kind: KindANSI, index: uint8(To256(c.rgb))}
}
