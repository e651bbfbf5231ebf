package render

import (
	"github.com/example/touchring/internal/ring"
	"github.com/example/touchring/internal/strip"
)

var (
	// spreadBase is the unlit background: full white emitter, no chroma.
	spreadBase = strip.Color{W: 255}
	// spreadCore is the lit spreading arc.
	spreadCore = strip.Color{B: 255}
)

// Spread renders the arc growing outward from the activated section. The
// leading edge starts at the section's first pixel and moves backward one
// pixel per iteration while the trailing edge moves forward, so the solid
// core widens by two pixels per frame until the iteration clamps at
// MaxIteration. Both edges carry a trapezoidal blue-to-white fade.
//
// The arc does not wrap around the ring: edge writes that fall outside the
// pixel range are dropped. Near the ring boundary the fade is therefore
// truncated instead of continuing on the far side. That matches the fixture
// as installed, where the arc never grows past the ring ends.
func Spread(f Frame, activated int, st *State) {
	first, last := SpreadEdges(activated, st.Iteration)

	for p := range f {
		f[p] = spreadBase
	}

	for i := 0; i < ring.TrapezoidWidth; i++ {
		up := uint8(ring.RampUp(i))
		setClamped(f, first-ring.TrapezoidWidth+i, strip.Color{B: up, W: 255 - up})

		down := uint8(ring.RampDown(i))
		setClamped(f, last+i, strip.Color{B: down, W: 255 - down})
	}

	for p := first; p < last; p++ {
		setClamped(f, p, spreadCore)
	}

	if st.Iteration < MaxIteration {
		st.Iteration++
	}
}

// SpreadEdges returns the first and last solid pixel bounds the arc would
// have at the given iteration, before clamping to the ring.
func SpreadEdges(activated, iteration int) (first, last int) {
	first = ring.Start(activated) - iteration
	last = first + ring.TrapezoidWidth + 2*iteration
	return first, last
}

func setClamped(f Frame, p int, c strip.Color) {
	if p >= 0 && p < len(f) {
		f[p] = c
	}
}
