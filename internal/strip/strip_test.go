package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	tt := []struct {
		name   string
		input  Color
		output uint32
	}{
		{
			"black",
			Color{},
			0x00000000,
		},
		{
			"pure red",
			Color{R: 0xff},
			0x00ff0000,
		},
		{
			"pure white channel",
			Color{W: 0xff},
			0xff000000,
		},
		{
			"mixed",
			Color{R: 0x12, G: 0x34, B: 0x56, W: 0x78},
			0x78123456,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, tc.input.Pack())
			assert.Equal(t, tc.input, unpack(tc.output))
		})
	}
}

func TestHSVPrimaries(t *testing.T) {
	tt := []struct {
		name string
		hue  uint16
		want Color
	}{
		{"red at zero", 0, Color{R: 255}},
		{"green a third in", 65536 / 3, Color{G: 255}},
		{"blue two thirds in", 2 * 65536 / 3, Color{B: 255}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := HSV(tc.hue, 255, 255)
			assert.Equal(t, tc.want, got)
			assert.Zero(t, got.W, "HSV never produces white")
		})
	}
}

func TestHSVValueScalesDown(t *testing.T) {
	full := HSV(0, 255, 255)
	half := HSV(0, 255, 127)
	assert.Less(t, half.R, full.R)
	assert.Zero(t, half.G)
	assert.Zero(t, half.B)
}

func TestGammaEndpointsAndMonotonicity(t *testing.T) {
	assert.Equal(t, uint8(0), Color{R: 0}.Gamma().R)
	assert.Equal(t, uint8(255), Color{R: 255}.Gamma().R)
	for i := 1; i < 256; i++ {
		lo := Color{R: uint8(i - 1)}.Gamma().R
		hi := Color{R: uint8(i)}.Gamma().R
		assert.LessOrEqual(t, lo, hi, "gamma must not decrease at %d", i)
	}
}

func TestGammaLeavesWhiteAlone(t *testing.T) {
	c := Color{R: 100, W: 42}.Gamma()
	assert.Equal(t, uint8(42), c.W)
}

func TestStripBounds(t *testing.T) {
	s, err := NewStrip(90)
	require.NoError(t, err)

	assert.Error(t, s.SetPixel(-1, Color{}))
	assert.Error(t, s.SetPixel(s.NumPixels(), Color{}))
	assert.NoError(t, s.SetPixel(0, Color{R: 1}))
	assert.NoError(t, s.Show())
}
