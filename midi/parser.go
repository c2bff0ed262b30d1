// SPDX-License-Identifier: EPL-2.0

package midi

import "time"

type parserState uint8

const (
	stateIdle parserState = iota
	stateExpectData1
	stateExpectData2
)

// Parser runs the byte-stream recognition state machine. Bytes are fed
// in arrival order; each complete message is normalized and dispatched
// to the sink immediately. The zero value is not usable; construct with
// NewParser.
//
// Only the three-byte message classes are recognized on the wire: Note
// On, Note Off (status class 0x80/0x90) and Control Change (0xB0).
// A status byte arriving while a data byte is expected discards the
// partial message and restarts recognition on that same byte, so the
// stream self-corrects without reporting an error.
type Parser struct {
	sink  Sink
	state parserState
	msg   [3]byte
	now   func() time.Time
}

// NewParser creates a parser dispatching to sink.
func NewParser(sink Sink) *Parser {
	return &Parser{
		sink: sink,
		now:  time.Now,
	}
}

// Feed consumes a chunk of raw bytes.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.feedByte(b)
	}
}

// Reset drops any partial message and returns to idle.
func (p *Parser) Reset() {
	p.state = stateIdle
}

func (p *Parser) feedByte(b byte) {
	switch p.state {
	case stateIdle:
		if (b&0xE0) == 0x80 || (b&0xF0) == 0xB0 {
			// Note On/Off or Control Change, any channel.
			p.msg[0] = b
			p.state = stateExpectData1
		}

	case stateExpectData1, stateExpectData2:
		if b&0x80 != 0 {
			// Status where a parameter was expected: restart on this byte.
			p.state = stateIdle
			p.feedByte(b)
			return
		}

		if p.state == stateExpectData1 {
			p.msg[1] = b
			p.state = stateExpectData2
			return
		}

		p.msg[2] = b
		p.state = stateIdle
		Dispatch(p.sink, p.msg[:], p.now())
	}
}
