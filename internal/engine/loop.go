package engine

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/example/touchring/internal/render"
	"github.com/example/touchring/internal/ring"
	"github.com/example/touchring/internal/strip"
	"github.com/example/touchring/internal/telemetry"
	"github.com/example/touchring/internal/touch"
)

// frameDelay is the fixed pause between frames.
const frameDelay = 5 * time.Millisecond

// Loop is the frame driver: read sensors, render one frame, push it to the
// strip, report, wait. It runs on a single goroutine and is the sole owner of
// the pixel buffer and the animation state.
type Loop struct {
	strip    *strip.Strip
	sensors  touch.Sensors
	reporter *telemetry.Reporter // nil when no host is attached

	mode   render.Mode
	state  render.State
	frame  render.Frame
	target int // last section the spread grew from
}

func New(s *strip.Strip, sensors touch.Sensors, reporter *telemetry.Reporter, mode render.Mode) *Loop {
	return &Loop{
		strip:    s,
		sensors:  sensors,
		reporter: reporter,
		mode:     mode,
		frame:    render.NewFrame(),
		target:   1,
	}
}

// Run steps frames until the stop channel closes. A sensor or strip failure
// ends the loop; per the fixture's design there is no degraded mode.
func (l *Loop) Run(stop <-chan struct{}) error {
	log.Infof("Frame loop running in %v mode", l.mode)
	for {
		select {
		case <-stop:
			log.Info("Frame loop stopping")
			return nil
		default:
		}

		if err := l.Step(); err != nil {
			return err
		}
		time.Sleep(frameDelay)
	}
}

// Step computes and transmits exactly one frame. The sensor state is captured
// once and stays fixed for the whole render.
func (l *Loop) Step() error {
	reading, err := l.sensors.Read()
	if err != nil {
		return err
	}
	snap := ring.NewSnapshot(reading.Touched)

	switch l.mode {
	case render.ModeSpread:
		if section, ok := snap.Lowest(); ok {
			if section != l.target {
				l.target = section
				l.state.Iteration = 0
			}
		} else {
			// Released: collapse back to the minimum arc and hold.
			l.state.Iteration = 0
		}
		render.Spread(l.frame, l.target, &l.state)
	default:
		render.Rainbow(l.frame, snap, &l.state)
	}

	for i, c := range l.frame {
		if err := l.strip.SetPixel(i, c); err != nil {
			return err
		}
	}
	if err := l.strip.Show(); err != nil {
		return err
	}

	if l.reporter != nil {
		if err := l.reporter.Report(reading); err != nil {
			log.Warn("Unable to report sensor state: ", err)
		}
	}
	return nil
}

// State returns a copy of the animation state after the last frame.
func (l *Loop) State() render.State {
	return l.state
}
