package telemetry

import (
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/example/touchring/internal/ring"
	"github.com/example/touchring/internal/touch"
)

// order maps line position to sensor index. The host expects the sensors in
// the harness wiring order, which starts at sensor 9 and wraps.
var order = [ring.SectionCount]int{9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7, 8}

// Reporter writes one line per frame to the host: the sixteen touch states in
// wiring order followed by the proximity state, as bare ASCII digits, newline
// terminated.
type Reporter struct {
	w    io.Writer
	port serial.Port
}

// NewReporter reports to an arbitrary writer.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// OpenSerial connects the reporter to the host over a serial device.
func OpenSerial(device string, baud int) (*Reporter, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", device, err)
	}
	return &Reporter{w: port, port: port}, nil
}

// Report sends the state line for one frame.
func (r *Reporter) Report(reading touch.Reading) error {
	line := make([]byte, 0, ring.SectionCount+2)
	for _, sensor := range order {
		line = append(line, digit(reading.Touched[sensor]))
	}
	line = append(line, digit(reading.Proximity), '\n')

	_, err := r.w.Write(line)
	return err
}

// Close releases the serial port, if the reporter owns one.
func (r *Reporter) Close() error {
	if r.port == nil {
		return nil
	}
	return r.port.Close()
}

func digit(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}
