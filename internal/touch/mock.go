//go:build !pi

package touch

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// mockSensors simulates a touch on section 1 for a short while whenever the
// process receives SIGHUP, so the animations can be exercised on a desktop
// machine.
type mockSensors struct {
	mu    sync.Mutex
	until time.Time
	stop  chan struct{}
}

func NewSensors(_ string, _, _ uint16) (Sensors, error) {
	log.Infoln("Using simulated touch sensors; send SIGHUP to touch")

	s := &mockSensors{stop: make(chan struct{})}
	go s.listen()
	return s, nil
}

func (s *mockSensors) listen() {
	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)
	defer signal.Stop(hupChan)

	for {
		select {
		case <-hupChan:
			s.mu.Lock()
			s.until = time.Now().Add(2 * time.Second)
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}

func (s *mockSensors) Read() (Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r Reading
	r.Touched[0] = time.Now().Before(s.until)
	return r, nil
}

func (s *mockSensors) Close() error {
	close(s.stop)
	return nil
}
