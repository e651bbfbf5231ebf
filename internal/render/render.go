package render

import (
	"fmt"

	"github.com/example/touchring/internal/ring"
	"github.com/example/touchring/internal/strip"
)

const (
	// hueStep is how far the hue phase advances every rainbow frame.
	hueStep = 256
	// hueWrap is five full turns of the 16 bit hue wheel.
	hueWrap = 5 * 65536
	// MaxIteration is where the spread arc stops growing and holds.
	MaxIteration = 130
)

// State carries the animation values that persist across frames: the rotating
// hue phase and the spread radius. The frame loop owns a single State and
// exactly one renderer advances it per frame.
type State struct {
	HuePhase  uint32
	Iteration int
}

// Mode selects which renderer produces the frame.
type Mode int

const (
	ModeRainbow Mode = iota
	ModeSpread
)

func (m Mode) String() string {
	switch m {
	case ModeRainbow:
		return "rainbow"
	case ModeSpread:
		return "spread"
	}
	return "unknown"
}

// ParseMode maps a configured mode name onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rainbow":
		return ModeRainbow, nil
	case "spread":
		return ModeSpread, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

// Frame is the pixel buffer for one frame of the ring. It is allocated once
// and fully overwritten by one renderer each frame.
type Frame []strip.Color

// NewFrame returns a buffer sized to the ring.
func NewFrame() Frame {
	return make(Frame, ring.PixelCount)
}
