// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides shared test doubles: block generators,
// recording engines and register buses. The engine types implement the
// exchange.Processor and midi.Sink interfaces without importing them,
// to keep the package usable from every component's tests.
package audiotest

import (
	"math"
	"sync"

	"github.com/ik5/audrt/midi"
	"github.com/ik5/audrt/pcm"
)

// RampBlock builds an interleaved stereo block whose left channel ramps
// up and right channel ramps down, tagged with a period number so tests
// can tell blocks from different periods apart.
func RampBlock(blockSize, period int) []uint32 {
	frames := blockSize / 2
	block := make([]uint32, blockSize)
	for i := range frames {
		v := float32(i+period) / float32(frames+period+1)
		block[2*i] = pcm.FromFloat(v)
		block[2*i+1] = pcm.FromFloat(-v)
	}
	return block
}

// SineBlock builds an interleaved stereo block carrying one sine cycle
// scaled by amp on both channels.
func SineBlock(blockSize int, amp float64) []uint32 {
	frames := blockSize / 2
	block := make([]uint32, blockSize)
	for i := range frames {
		v := float32(amp * math.Sin(2*math.Pi*float64(i)/float64(frames)))
		raw := pcm.FromFloat(v)
		block[2*i] = raw
		block[2*i+1] = raw
	}
	return block
}

// GainEngine is a minimal processing engine that copies input to output
// scaled by Gain, and records every MIDI event it receives.
type GainEngine struct {
	Gain float32

	mu     sync.Mutex
	events []midi.Event
	calls  int
}

// NewGainEngine returns an engine with the given gain.
func NewGainEngine(gain float32) *GainEngine {
	return &GainEngine{Gain: gain}
}

func (g *GainEngine) ProcessBlock(inLeft, inRight, outLeft, outRight []float32) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	for i := range inLeft {
		outLeft[i] = inLeft[i] * g.Gain
		outRight[i] = inRight[i] * g.Gain
	}
}

func (g *GainEngine) OnMIDIEvent(ev midi.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events = append(g.events, ev)
}

// Events returns a snapshot of the recorded MIDI events.
func (g *GainEngine) Events() []midi.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]midi.Event, len(g.events))
	copy(out, g.events)
	return out
}

// Calls returns how many times ProcessBlock ran.
func (g *GainEngine) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// CaptureEngine snapshots the input channel buffers it was handed each
// period, for verifying which period's data the engine saw.
type CaptureEngine struct {
	Inputs [][]float32 // one copy of the left channel per period
}

func (c *CaptureEngine) ProcessBlock(inLeft, inRight, outLeft, outRight []float32) {
	snap := make([]float32, len(inLeft))
	copy(snap, inLeft)
	c.Inputs = append(c.Inputs, snap)

	copy(outLeft, inLeft)
	copy(outRight, inRight)
}

// RegWrite is one recorded register write.
type RegWrite struct {
	Reg   uint8
	Value uint16
}

// RegisterLog is a register bus that records writes and can be made to
// fail from a given write onward (FailAfter < 0 never fails).
type RegisterLog struct {
	Writes    []RegWrite
	FailAfter int
	Err       error
}

// NewRegisterLog returns a bus that never fails.
func NewRegisterLog() *RegisterLog {
	return &RegisterLog{FailAfter: -1}
}

func (r *RegisterLog) WriteReg(reg uint8, value uint16) error {
	if r.FailAfter >= 0 && len(r.Writes) >= r.FailAfter {
		return r.Err
	}
	r.Writes = append(r.Writes, RegWrite{Reg: reg, Value: value})
	return nil
}

// Value returns the last value written to reg, and whether reg was
// written at all.
func (r *RegisterLog) Value(reg uint8) (uint16, bool) {
	for i := len(r.Writes) - 1; i >= 0; i-- {
		if r.Writes[i].Reg == reg {
			return r.Writes[i].Value, true
		}
	}
	return 0, false
}

// CollectSink is a midi.Sink that appends every event to Events.
type CollectSink struct {
	Events []midi.Event
}

func (c *CollectSink) OnMIDIEvent(ev midi.Event) {
	c.Events = append(c.Events, ev)
}
