// SPDX-License-Identifier: EPL-2.0

package midi

import "time"

// Normalize converts one pre-framed raw MIDI message into an Event.
// pkt[0] is the status byte; pkt[1] and pkt[2] are the data bytes.
// Two-byte packets are accepted for the one-data-byte types
// (ProgramChange, ChannelPressure); every other accepted type needs
// three bytes. The second reported value is false when the packet is
// too short or carries a message type outside the accepted set.
func Normalize(pkt []byte, ts time.Time) (Event, bool) {
	if len(pkt) < 2 {
		return Event{}, false
	}

	status := pkt[0]
	if status&0x80 == 0 {
		return Event{}, false
	}

	typ := Type(status & 0xF0)
	channel := status & 0x0F
	data1 := pkt[1]
	var data2 uint8

	switch typ {
	case NoteOn, NoteOff, ControlChange, PitchBend:
		if len(pkt) < 3 {
			return Event{}, false
		}
		data2 = pkt[2]
		if typ == NoteOn && data2 == 0 {
			// Running-status style Note Off.
			typ = NoteOff
		}

	case ProgramChange, ChannelPressure:
		// One data byte; a trailing pad byte is ignored.

	default:
		return Event{}, false
	}

	return Event{
		Type:      typ,
		Channel:   channel,
		Data1:     data1,
		Data2:     data2,
		Timestamp: ts,
	}, true
}

// Dispatch normalizes pkt and, when it is a valid message, hands the
// event to sink. It reports whether an event was dispatched.
func Dispatch(sink Sink, pkt []byte, ts time.Time) bool {
	ev, ok := Normalize(pkt, ts)
	if !ok {
		return false
	}
	sink.OnMIDIEvent(ev)
	return true
}
