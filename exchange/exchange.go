// SPDX-License-Identifier: EPL-2.0

package exchange

import (
	"sync/atomic"

	"github.com/ik5/audrt/pcm"
)

// Processor is the synchronous "process one block" contract of the
// signal-processing engine. The channel buffers are handed over by
// reference for the duration of the call only; the engine must not
// retain them.
type Processor interface {
	ProcessBlock(inLeft, inRight, outLeft, outRight []float32)
}

// Exchanger implements the double-buffered block exchange. One
// real-time context drives AcceptInput/ProduceOutput once per period;
// SetProcessor and the counters may be used from other contexts.
type Exchanger struct {
	blockSize int
	frames    int

	// Raw double buffers, one pair per direction.
	inputA, inputB   []uint32
	outputA, outputB []uint32

	// Which region is current; flipped once per period in ProduceOutput.
	useA bool

	// Normalized channel buffers handed to the processor.
	inLeft, inRight   []float32
	outLeft, outRight []float32

	proc    atomic.Pointer[Processor]
	dropped atomic.Uint64
}

// New creates an Exchanger for interleaved stereo blocks of blockSize
// samples. blockSize must be positive and even. proc may be nil for
// pass-through operation.
func New(blockSize int, proc Processor) (*Exchanger, error) {
	if blockSize <= 0 || blockSize%2 != 0 {
		return nil, ErrBadBlockSize
	}

	frames := blockSize / 2
	e := &Exchanger{
		blockSize: blockSize,
		frames:    frames,
		inputA:    make([]uint32, blockSize),
		inputB:    make([]uint32, blockSize),
		outputA:   make([]uint32, blockSize),
		outputB:   make([]uint32, blockSize),
		useA:      true,
		inLeft:    make([]float32, frames),
		inRight:   make([]float32, frames),
		outLeft:   make([]float32, frames),
		outRight:  make([]float32, frames),
	}
	e.SetProcessor(proc)

	return e, nil
}

// BlockSize returns the interleaved block length in samples.
func (e *Exchanger) BlockSize() int { return e.blockSize }

// Frames returns the per-channel buffer length (BlockSize/2).
func (e *Exchanger) Frames() int { return e.frames }

// SetProcessor binds or replaces the engine. A nil processor selects
// pass-through.
func (e *Exchanger) SetProcessor(proc Processor) {
	if proc == nil {
		e.proc.Store(nil)
		return
	}
	e.proc.Store(&proc)
}

// Dropped reports how many periods were discarded because a block of
// unexpected length arrived.
func (e *Exchanger) Dropped() uint64 { return e.dropped.Load() }

// AcceptInput stores one raw input block and converts it into the
// input channel buffers. It reports false, leaving all state
// untouched, when len(block) does not match the negotiated block size.
func (e *Exchanger) AcceptInput(block []uint32) bool {
	if len(block) != e.blockSize {
		e.dropped.Add(1)
		return false
	}

	cur := e.inputB
	if e.useA {
		cur = e.inputA
	}
	copy(cur, block)

	pcm.Deinterleave(cur, e.inLeft, e.inRight)

	return true
}

// ProduceOutput runs the engine on the current channel buffers, packs
// the result into the caller's block and flips the slot selector. It
// returns the number of samples written: the block size, or 0 when
// len(block) does not match it.
func (e *Exchanger) ProduceOutput(block []uint32) int {
	if len(block) != e.blockSize {
		e.dropped.Add(1)
		return 0
	}

	cur := e.outputB
	if e.useA {
		cur = e.outputA
	}

	if p := e.proc.Load(); p != nil {
		(*p).ProcessBlock(e.inLeft, e.inRight, e.outLeft, e.outRight)
	} else {
		// No engine bound: pass the input through unchanged.
		copy(e.outLeft, e.inLeft)
		copy(e.outRight, e.inRight)
	}

	pcm.Interleave(e.outLeft, e.outRight, cur)
	copy(block, cur)

	e.useA = !e.useA

	return e.blockSize
}
