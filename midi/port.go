// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// PortSource binds to a packet-oriented MIDI input port (USB MIDI via
// the registered gomidi driver) and dispatches each received packet
// through the common normalization step.
//
// The source starts unbound. Poll scans the current port topology: an
// unbound source binds to the first input port whose name contains the
// configured match string, a bound source whose port disappeared
// unbinds and becomes eligible to rebind to a later port. A port never
// appearing is not an error; the system simply runs without that input.
type PortSource struct {
	match  string
	sink   Sink
	logger *slog.Logger

	mu     sync.Mutex
	portID string
	stop   func()
}

// NewPortSource creates an unbound source. match is the case-insensitive
// substring a port name must contain; empty matches any port. logger
// may be nil.
func NewPortSource(match string, sink Sink, logger *slog.Logger) *PortSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortSource{
		match:  strings.ToLower(match),
		sink:   sink,
		logger: logger,
	}
}

// Bound returns the name of the currently bound port, or "" when
// unbound.
func (s *PortSource) Bound() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portID
}

// Poll reconciles the binding with the current port topology. Call it
// from the housekeeping context each tick.
func (s *PortSource) Poll() {
	ins := gomidi.GetInPorts()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		for _, in := range ins {
			if in.String() == s.portID {
				return // still attached
			}
		}
		s.logger.Info("midi port removed", "port", s.portID)
		s.unbindLocked()
	}

	for i, in := range ins {
		name := strings.ToLower(in.String())
		if s.match != "" && !strings.Contains(name, s.match) {
			continue
		}

		stop, err := gomidi.ListenTo(ins[i], s.receive)
		if err != nil {
			s.logger.Warn("midi port open failed", "port", in.String(), "error", err)
			continue
		}

		s.portID = in.String()
		s.stop = stop
		s.logger.Info("midi port bound", "port", s.portID)
		return
	}
}

// Close unbinds from the current port, if any.
func (s *PortSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unbindLocked()
	return nil
}

func (s *PortSource) unbindLocked() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.portID = ""
}

func (s *PortSource) receive(msg gomidi.Message, _ int32) {
	Dispatch(s.sink, []byte(msg), time.Now())
}
