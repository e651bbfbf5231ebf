//go:build pi

package strip

import (
	ws "github.com/rpi-ws281x/rpi-ws281x-go"

	"github.com/example/touchring/internal/ring"
)

// NewStrip opens the SK6812 RGBW ring on the default PWM channel.
func NewStrip(brightness int) (*Strip, error) {
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = brightness
	opt.Channels[0].LedCount = ring.PixelCount
	opt.Channels[0].StripeType = ws.SK6812StripGRBW

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	if err := dev.Init(); err != nil {
		return nil, err
	}

	return &Strip{ws: dev}, nil
}
