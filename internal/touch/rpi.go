//go:build pi

package touch

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/devices/v3/mcp23xxx"
	"periph.io/x/host/v3"

	"github.com/example/touchring/internal/ring"
)

const (
	// proxFullScale is the ADC input range for the proximity sensor.
	proxFullScale = 3300 * physic.MilliVolt
	// proxThreshold is the activation level on the sensor's 0-1023 scale.
	proxThreshold = 500
)

type boardSensors struct {
	bus  i2c.BusCloser
	pins [ring.SectionCount]gpio.PinIO
	prox analog.PinADC
}

// NewSensors opens the touch board: an MCP23017 I/O expander carrying the
// sixteen touch inputs and an ADS1015 carrying the proximity sensor, both on
// the given I2C bus. A failure here is fatal to the fixture; there is no
// degraded mode without the expander.
func NewSensors(busName string, expanderAddr, adcAddr uint16) (Sensors, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("unable to open I2C bus %q: %w", busName, err)
	}

	exp, err := mcp23xxx.NewI2C(bus, mcp23xxx.MCP23017, expanderAddr)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("unable to initialize the I/O expander: %w", err)
	}

	s := &boardSensors{bus: bus}
	for i := range s.pins {
		pin := exp.Pins[i/8][i%8]
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			bus.Close()
			return nil, fmt.Errorf("unable to configure touch input %d: %w", i, err)
		}
		s.pins[i] = pin
	}

	opts := adcOpts(adcAddr)
	adc, err := ads1x15.NewADS1015(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("unable to initialize the proximity ADC: %w", err)
	}
	s.prox, err = adc.PinForChannel(ads1x15.Channel0, proxFullScale, 100*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("unable to configure the proximity channel: %w", err)
	}

	log.Infof("Touch board up on %s (expander 0x%02x, adc 0x%02x)", busName, expanderAddr, adcAddr)
	return s, nil
}

func adcOpts(addr uint16) ads1x15.Opts {
	opts := ads1x15.DefaultOpts
	opts.I2cAddress = addr
	return opts
}

func (s *boardSensors) Read() (Reading, error) {
	var r Reading
	for i, pin := range s.pins {
		// The touch inputs are active low.
		r.Touched[i] = pin.Read() == gpio.Low
	}

	sample, err := s.prox.Read()
	if err != nil {
		return r, fmt.Errorf("proximity read: %w", err)
	}
	level := int64(sample.V) * 1023 / int64(proxFullScale)
	r.Proximity = level > proxThreshold

	return r, nil
}

func (s *boardSensors) Close() error {
	if err := s.prox.Halt(); err != nil {
		log.Warn("Unable to halt the proximity channel: ", err)
	}
	return s.bus.Close()
}
