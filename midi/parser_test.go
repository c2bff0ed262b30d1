// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"testing"
	"time"
)

type collectSink struct {
	events []Event
}

func (c *collectSink) OnMIDIEvent(ev Event) {
	c.events = append(c.events, ev)
}

func feed(t *testing.T, bytes []byte) []Event {
	t.Helper()

	sink := &collectSink{}
	p := NewParser(sink)
	p.Feed(bytes)
	return sink.events
}

func TestParser_NoteOn(t *testing.T) {
	t.Parallel()

	events := feed(t, []byte{0x90, 0x3C, 0x64})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Type != NoteOn || ev.Channel != 0 || ev.Data1 != 60 || ev.Data2 != 100 {
		t.Errorf("got %v ch=%d d1=%d d2=%d, want NoteOn ch=0 d1=60 d2=100",
			ev.Type, ev.Channel, ev.Data1, ev.Data2)
	}
	if ev.Timestamp.IsZero() {
		t.Error("event has zero timestamp")
	}
}

func TestParser_ResyncOnStatusByte(t *testing.T) {
	t.Parallel()

	// A Note Off status arrives where a data byte was expected: the
	// partial Note On is discarded and the Note Off message parsed
	// starting from that same byte.
	events := feed(t, []byte{0x90, 0x80, 0x3C, 0x64})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Type != NoteOff || ev.Channel != 0 || ev.Data1 != 60 || ev.Data2 != 100 {
		t.Errorf("got %v ch=%d d1=%d d2=%d, want NoteOff ch=0 d1=60 d2=100",
			ev.Type, ev.Channel, ev.Data1, ev.Data2)
	}
}

func TestParser_ZeroVelocityNoteOn(t *testing.T) {
	t.Parallel()

	events := feed(t, []byte{0x91, 0x40, 0x00})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Type != NoteOff || ev.Channel != 1 || ev.Data1 != 64 {
		t.Errorf("got %v ch=%d d1=%d, want NoteOff ch=1 d1=64", ev.Type, ev.Channel, ev.Data1)
	}
}

func TestParser_ControlChange(t *testing.T) {
	t.Parallel()

	events := feed(t, []byte{0xB5, 0x07, 0x7F})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Type != ControlChange || ev.Channel != 5 || ev.Data1 != 7 || ev.Data2 != 127 {
		t.Errorf("got %v ch=%d d1=%d d2=%d, want ControlChange ch=5 d1=7 d2=127",
			ev.Type, ev.Channel, ev.Data1, ev.Data2)
	}
}

func TestParser_IgnoresUnacceptedStatusClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bytes []byte
	}{
		{name: "program change", bytes: []byte{0xC0, 0x10}},
		{name: "pitch bend", bytes: []byte{0xE0, 0x00, 0x40}},
		{name: "system realtime clock", bytes: []byte{0xF8}},
		{name: "stray data bytes", bytes: []byte{0x01, 0x02, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if events := feed(t, tt.bytes); len(events) != 0 {
				t.Errorf("got %d events, want 0", len(events))
			}
		})
	}
}

func TestParser_BackToBackMessages(t *testing.T) {
	t.Parallel()

	events := feed(t, []byte{
		0x90, 0x3C, 0x64, // NoteOn
		0xB0, 0x01, 0x20, // ControlChange
		0x80, 0x3C, 0x00, // NoteOff
	})
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	want := []Type{NoteOn, ControlChange, NoteOff}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("event %d type = %v, want %v", i, ev.Type, want[i])
		}
	}
}

func TestParser_SplitAcrossFeeds(t *testing.T) {
	t.Parallel()

	sink := &collectSink{}
	p := NewParser(sink)
	p.Feed([]byte{0x90})
	p.Feed([]byte{0x3C})
	p.Feed([]byte{0x64})

	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	if sink.events[0].Type != NoteOn {
		t.Errorf("type = %v, want NoteOn", sink.events[0].Type)
	}
}

func TestParser_ResetDropsPartialMessage(t *testing.T) {
	t.Parallel()

	sink := &collectSink{}
	p := NewParser(sink)
	p.Feed([]byte{0x90, 0x3C})
	p.Reset()
	p.Feed([]byte{0x64}) // stale data byte, ignored in idle

	if len(sink.events) != 0 {
		t.Errorf("got %d events after reset, want 0", len(sink.events))
	}
}

func TestParser_TimestampsMonotonic(t *testing.T) {
	t.Parallel()

	sink := &collectSink{}
	p := NewParser(sink)

	tick := time.Unix(0, 0)
	p.now = func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}

	p.Feed([]byte{0x90, 0x3C, 0x64, 0x80, 0x3C, 0x00})
	if len(sink.events) != 2 {
		t.Fatalf("got %d events, want 2", len(sink.events))
	}
	if !sink.events[1].Timestamp.After(sink.events[0].Timestamp) {
		t.Error("timestamps not monotonically increasing")
	}
}
