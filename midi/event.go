// SPDX-License-Identifier: EPL-2.0

package midi

import "time"

// Type is a normalized MIDI message type. The values are the MIDI
// status-class nibble shifted into the high nibble, channel bits zero.
type Type uint8

const (
	NoteOff         Type = 0x80
	NoteOn          Type = 0x90
	ControlChange   Type = 0xB0
	ProgramChange   Type = 0xC0
	ChannelPressure Type = 0xD0
	PitchBend       Type = 0xE0
)

func (t Type) String() string {
	switch t {
	case NoteOff:
		return "NoteOff"
	case NoteOn:
		return "NoteOn"
	case ControlChange:
		return "ControlChange"
	case ProgramChange:
		return "ProgramChange"
	case ChannelPressure:
		return "ChannelPressure"
	case PitchBend:
		return "PitchBend"
	}
	return "Unknown"
}

// Event is one normalized MIDI message. Data2 is zero for the
// one-data-byte types (ProgramChange, ChannelPressure).
type Event struct {
	Type      Type
	Channel   uint8
	Data1     uint8
	Data2     uint8
	Timestamp time.Time
}

// Sink consumes normalized events in arrival order.
type Sink interface {
	OnMIDIEvent(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) OnMIDIEvent(ev Event) { f(ev) }
