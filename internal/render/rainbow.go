package render

import (
	"github.com/example/touchring/internal/ring"
	"github.com/example/touchring/internal/strip"
)

// Rainbow renders a slowly rotating hue field across the whole ring, with the
// white channel of each pixel driven by the touch state of its section and
// trapezoidal bleed from the two neighbouring sections. It advances the hue
// phase by one step, wrapping after five turns of the wheel.
//
// Only the physical sections 1..16 are rendered; the duplicate slots at the
// array ends exist for neighbour lookups and never produce pixels of their
// own.
func Rainbow(f Frame, snap ring.Snapshot, st *State) {
	st.HuePhase = (st.HuePhase + hueStep) % hueWrap

	curr := 0
	for s := 1; s <= ring.SectionCount; s++ {
		n := ring.Length(s)
		for i := 0; i < n; i++ {
			// A touched section lights fully; a touched neighbour bleeds in
			// along the fade profile.
			white := int(snap[s+1])*ring.RampUp(i) +
				int(snap[s])*255 +
				int(snap[s-1])*ring.RampDown(i)
			if white > 255 {
				white = 255
			}

			hue := st.HuePhase + uint32(curr+i)*65536/ring.PixelCount
			c := strip.HSV(uint16(hue), 255, 255).Gamma()
			f[curr+i] = c.WithWhite(uint8(white))
		}
		curr += n
	}
}
