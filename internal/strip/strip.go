package strip

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// Strip drives the addressable RGBW ring. Pixel writes land in the engine's
// buffer and become visible on Show. The strip is owned by the frame loop
// and is not safe for concurrent use.
type Strip struct {
	ws wsEngine
}

// NumPixels returns the number of pixels on the ring.
func (s *Strip) NumPixels() int {
	return len(s.ws.Leds(0))
}

// SetPixel stores one pixel value. Out of range indices are rejected so that
// renderer arithmetic bugs surface as errors rather than buffer corruption.
func (s *Strip) SetPixel(i int, c Color) error {
	leds := s.ws.Leds(0)
	if i < 0 || i >= len(leds) {
		return fmt.Errorf("pixel %d out of range 0-%d", i, len(leds)-1)
	}
	leds[i] = c.Pack()
	return nil
}

// Show transmits the buffered frame to the strip and blocks until the
// transfer completes.
func (s *Strip) Show() error {
	if err := s.ws.Render(); err != nil {
		return err
	}
	return s.ws.Wait()
}

// Clear blanks every pixel and transmits.
func (s *Strip) Clear() error {
	leds := s.ws.Leds(0)
	for i := range leds {
		leds[i] = 0
	}
	return s.Show()
}

// Close blanks the ring and releases the engine.
func (s *Strip) Close() {
	if err := s.Clear(); err != nil {
		log.Warn("Unable to blank the strip: ", err)
	}
	s.ws.Fini()
}
