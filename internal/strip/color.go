package strip

// Color is one RGBW pixel. The white channel drives the dedicated white
// emitter and is independent of the chromatic channels.
type Color struct {
	R, G, B, W uint8
}

// WithWhite returns the same chromatic color with the white channel replaced.
func (c Color) WithWhite(w uint8) Color {
	c.W = w
	return c
}

// Pack returns the color in the 0xWWRRGGBB layout the ws281x engine expects.
func (c Color) Pack() uint32 {
	return uint32(c.W)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// unpack is the inverse of Pack.
func unpack(v uint32) Color {
	return Color{
		W: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// HSV converts a position on the 16 bit hue wheel to a chromatic color, with
// saturation and value in 0-255. The white channel of the result is always
// zero. The hue wheel is divided into six 255-wide sextants, matching the
// conversion the strip vendor libraries use, so hue 0 is red, a third of the
// wheel in is green and two thirds in is blue.
func HSV(hue uint16, sat, val uint8) Color {
	h := (uint32(hue)*1530 + 32768) / 65536

	var r, g, b uint32
	switch {
	case h < 255:
		r, g, b = 255, h, 0
	case h < 510:
		r, g, b = 510-h, 255, 0
	case h < 765:
		r, g, b = 0, 255, h-510
	case h < 1020:
		r, g, b = 0, 1020-h, 255
	case h < 1275:
		r, g, b = h-1020, 0, 255
	case h < 1530:
		r, g, b = 255, 0, 1530-h
	default:
		r, g, b = 255, 0, 0
	}

	v1 := uint32(val) + 1
	s1 := uint32(sat) + 1
	s2 := uint32(255 - sat)

	return Color{
		R: uint8(((r*s1>>8 + s2) * v1) >> 8),
		G: uint8(((g*s1>>8 + s2) * v1) >> 8),
		B: uint8(((b*s1>>8 + s2) * v1) >> 8),
	}
}

// Gamma applies the perceptual gamma curve to the chromatic channels. The
// white channel is left alone; it is set by the renderers after correction.
func (c Color) Gamma() Color {
	return Color{
		R: gamma8[c.R],
		G: gamma8[c.G],
		B: gamma8[c.B],
		W: c.W,
	}
}

// gamma8 maps linear 8 bit intensity to a perceptually even output level.
var gamma8 = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2,
	2, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 5, 5, 5,
	5, 6, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10,
	10, 10, 11, 11, 11, 12, 12, 13, 13, 13, 14, 14, 15, 15, 16, 16,
	17, 17, 18, 18, 19, 19, 20, 20, 21, 21, 22, 22, 23, 24, 24, 25,
	25, 26, 27, 27, 28, 29, 29, 30, 31, 32, 32, 33, 34, 35, 35, 36,
	37, 38, 39, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 50,
	51, 52, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 66, 67, 68,
	69, 70, 72, 73, 74, 75, 77, 78, 79, 81, 82, 83, 85, 86, 87, 89,
	90, 92, 93, 95, 96, 98, 99, 101, 102, 104, 105, 107, 109, 110, 112, 114,
	115, 117, 119, 120, 122, 124, 126, 127, 129, 131, 133, 135, 137, 138, 140, 142,
	144, 146, 148, 150, 152, 154, 156, 158, 160, 162, 164, 167, 169, 171, 173, 175,
	177, 180, 182, 184, 186, 189, 191, 193, 196, 198, 200, 203, 205, 208, 210, 213,
	215, 218, 220, 223, 225, 228, 231, 233, 236, 239, 241, 244, 247, 249, 252, 255,
}
