// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	ts := time.Unix(1000, 0)

	tests := []struct {
		name   string
		pkt    []byte
		want   Event
		wantOK bool
	}{
		{
			name:   "note on",
			pkt:    []byte{0x90, 0x3C, 0x64},
			want:   Event{Type: NoteOn, Channel: 0, Data1: 60, Data2: 100},
			wantOK: true,
		},
		{
			name:   "note off",
			pkt:    []byte{0x83, 0x3C, 0x40},
			want:   Event{Type: NoteOff, Channel: 3, Data1: 60, Data2: 64},
			wantOK: true,
		},
		{
			name:   "zero velocity note on becomes note off",
			pkt:    []byte{0x91, 0x40, 0x00},
			want:   Event{Type: NoteOff, Channel: 1, Data1: 64, Data2: 0},
			wantOK: true,
		},
		{
			name:   "control change",
			pkt:    []byte{0xBF, 0x07, 0x64},
			want:   Event{Type: ControlChange, Channel: 15, Data1: 7, Data2: 100},
			wantOK: true,
		},
		{
			name:   "program change two bytes",
			pkt:    []byte{0xC2, 0x05},
			want:   Event{Type: ProgramChange, Channel: 2, Data1: 5, Data2: 0},
			wantOK: true,
		},
		{
			name:   "program change padded to three bytes",
			pkt:    []byte{0xC2, 0x05, 0x77},
			want:   Event{Type: ProgramChange, Channel: 2, Data1: 5, Data2: 0},
			wantOK: true,
		},
		{
			name:   "channel pressure",
			pkt:    []byte{0xD4, 0x33},
			want:   Event{Type: ChannelPressure, Channel: 4, Data1: 51, Data2: 0},
			wantOK: true,
		},
		{
			name:   "pitch bend",
			pkt:    []byte{0xE0, 0x00, 0x40},
			want:   Event{Type: PitchBend, Channel: 0, Data1: 0, Data2: 64},
			wantOK: true,
		},
		{
			name:   "empty packet",
			pkt:    nil,
			wantOK: false,
		},
		{
			name:   "single byte",
			pkt:    []byte{0x90},
			wantOK: false,
		},
		{
			name:   "note on truncated to two bytes",
			pkt:    []byte{0x90, 0x3C},
			wantOK: false,
		},
		{
			name:   "data byte in status position",
			pkt:    []byte{0x10, 0x20, 0x30},
			wantOK: false,
		},
		{
			name:   "polyphonic pressure not accepted",
			pkt:    []byte{0xA0, 0x3C, 0x40},
			wantOK: false,
		},
		{
			name:   "system exclusive not accepted",
			pkt:    []byte{0xF0, 0x7E, 0x7F},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.pkt, ts)
			if ok != tt.wantOK {
				t.Fatalf("Normalize() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}

			tt.want.Timestamp = ts
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	sink := &collectSink{}

	if !Dispatch(sink, []byte{0x90, 0x3C, 0x64}, time.Now()) {
		t.Error("Dispatch() = false for a valid packet")
	}
	if Dispatch(sink, []byte{0xF0}, time.Now()) {
		t.Error("Dispatch() = true for an invalid packet")
	}
	if len(sink.events) != 1 {
		t.Errorf("sink saw %d events, want 1", len(sink.events))
	}
}
