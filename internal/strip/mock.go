//go:build !pi

package strip

import (
	log "github.com/sirupsen/logrus"

	"github.com/example/touchring/internal/ring"
)

type mockEngine struct {
	colors []uint32
	shown  int
}

func (d *mockEngine) Init() error {
	return nil
}

func (d *mockEngine) Render() error {
	d.shown++
	log.Debugf("strip: frame %d rendered", d.shown)
	return nil
}

func (d *mockEngine) Wait() error {
	return nil
}

func (d *mockEngine) Fini() {
	log.Debug("strip: released")
}

func (d *mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

// NewStrip returns a strip backed by an in-memory buffer, so the daemon can
// run on a desktop machine without ring hardware attached.
func NewStrip(_ int) (*Strip, error) {
	return &Strip{
		ws: &mockEngine{
			colors: make([]uint32, ring.PixelCount),
		},
	}, nil
}
