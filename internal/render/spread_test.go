package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/touchring/internal/ring"
	"github.com/example/touchring/internal/strip"
)

func TestSpreadEdges(t *testing.T) {
	tt := []struct {
		name      string
		section   int
		iteration int
		first     int
		last      int
	}{
		{"section 7 before growth", 7, 0, 106, 124},
		{"section 7 after ten frames", 7, 10, 96, 134},
		{"section 1 start", 1, 0, 0, 18},
		{"fully expanded", 7, 130, -24, 254 + ring.TrapezoidWidth},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			first, last := SpreadEdges(tc.section, tc.iteration)
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.last, last)
		})
	}
}

func TestSpreadZones(t *testing.T) {
	f := NewFrame()
	st := &State{Iteration: 10}
	Spread(f, 7, st)

	first, last := SpreadEdges(7, 10)

	// Far background on both sides.
	assert.Equal(t, spreadBase, f[0])
	assert.Equal(t, spreadBase, f[first-ring.TrapezoidWidth-1])
	assert.Equal(t, spreadBase, f[last+ring.TrapezoidWidth])
	assert.Equal(t, spreadBase, f[ring.PixelCount-1])

	// Fade-in: blue rises, white is its complement.
	for i := 0; i < ring.TrapezoidWidth; i++ {
		up := uint8(ring.RampUp(i))
		assert.Equal(t, strip.Color{B: up, W: 255 - up}, f[first-ring.TrapezoidWidth+i], "fade-in %d", i)
	}

	// Solid core: pure blue, no white.
	for p := first; p < last; p++ {
		assert.Equal(t, spreadCore, f[p], "core pixel %d", p)
	}

	// Fade-out mirrors the fade-in.
	for i := 0; i < ring.TrapezoidWidth; i++ {
		down := uint8(ring.RampDown(i))
		assert.Equal(t, strip.Color{B: down, W: 255 - down}, f[last+i], "fade-out %d", i)
	}
}

func TestSpreadIterationClampsAtMax(t *testing.T) {
	f := NewFrame()
	st := &State{}

	prev := -1
	for i := 0; i < MaxIteration+20; i++ {
		assert.Greater(t, st.Iteration, prev, "iteration must not decrease")
		if st.Iteration < MaxIteration {
			prev = st.Iteration
		}
		Spread(f, 7, st)
	}
	assert.Equal(t, MaxIteration, st.Iteration)

	first, last := SpreadEdges(7, st.Iteration)
	assert.Equal(t, ring.TrapezoidWidth+260, last-first)
}

func TestSpreadClampsAtRingEnds(t *testing.T) {
	// Fully expanded from the last section, the arc extends well past the end
	// of the ring. The writes must be dropped, not wrapped.
	f := NewFrame()
	st := &State{Iteration: MaxIteration}
	Spread(f, 16, st)

	first, last := SpreadEdges(16, MaxIteration)
	assert.Greater(t, last, ring.PixelCount, "arc must extend past the end for this test to mean anything")

	for p := 0; p < first-ring.TrapezoidWidth; p++ {
		assert.Equal(t, spreadBase, f[p], "pixel %d", p)
	}
	for p := first; p < ring.PixelCount; p++ {
		assert.Equal(t, spreadCore, f[p], "pixel %d", p)
	}
}

func TestSpreadOverwritesEveryPixel(t *testing.T) {
	f := NewFrame()
	poison := strip.Color{R: 1, G: 2, B: 3, W: 4}
	for i := range f {
		f[i] = poison
	}

	Spread(f, 1, &State{})
	for i, c := range f {
		assert.NotEqual(t, poison, c, "pixel %d left over from previous frame", i)
	}
}
