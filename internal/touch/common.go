package touch

import (
	"fmt"

	"github.com/example/touchring/internal/ring"
)

// Reading is one synchronous capture of all the fixture's sensors. Touched is
// indexed by sensor number (sensor n drives section n+1 of the ring), already
// inverted to active-high.
type Reading struct {
	Touched   [ring.SectionCount]bool
	Proximity bool
}

func (r Reading) String() string {
	touched := 0
	for _, t := range r.Touched {
		if t {
			touched++
		}
	}
	return fmt.Sprintf("%d sensor(s) touched, proximity %v", touched, r.Proximity)
}

// Sensors reads the touch ring's sensor hardware.
type Sensors interface {
	Read() (Reading, error)
	Close() error
}
