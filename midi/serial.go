// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"errors"
	"io"
)

// serialChunk bounds how many bytes one poll drains, matching the read
// granularity of the UART receive FIFO.
const serialChunk = 32

// SerialSource drains raw MIDI bytes from a byte-oriented reader (a
// UART at 31250 baud, or the USB gadget endpoint) and feeds them to the
// byte-stream parser. Poll is called from the housekeeping context at a
// bounded rate; it performs at most one read per call.
type SerialSource struct {
	r      io.Reader
	parser *Parser
	buf    [serialChunk]byte
}

// NewSerialSource creates a source reading from r and dispatching
// recognized messages to sink.
func NewSerialSource(r io.Reader, sink Sink) *SerialSource {
	return &SerialSource{
		r:      r,
		parser: NewParser(sink),
	}
}

// Poll reads once from the underlying reader and parses whatever
// arrived. Running out of data is not an error; any other read failure
// is returned after the bytes that did arrive were parsed.
func (s *SerialSource) Poll() error {
	n, err := s.r.Read(s.buf[:])
	if n > 0 {
		s.parser.Feed(s.buf[:n])
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
