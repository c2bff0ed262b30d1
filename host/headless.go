// SPDX-License-Identifier: EPL-2.0

package host

import (
	"github.com/ik5/audrt/source"
)

// Headless drives a Handler synchronously, one period per call, with
// no real-time pacing. Meant for tests, benchmarks and offline
// rendering.
type Headless struct {
	handler   Handler
	blockSize int

	src    source.Source
	floats []float32
	in     []uint32
	out    []uint32

	onOutput func(block []uint32)
}

func NewHeadless(handler Handler, blockSize int) *Headless {
	return &Headless{
		handler:   handler,
		blockSize: blockSize,
		floats:    make([]float32, blockSize),
		in:        make([]uint32, blockSize),
		out:       make([]uint32, blockSize),
	}
}

// SetSource selects the input feed. A nil source means silence. The
// source must produce interleaved stereo at the engine's sample rate.
func (h *Headless) SetSource(src source.Source) { h.src = src }

// OnOutput registers a callback receiving each produced block. The
// slice is reused across periods; copy it to keep it.
func (h *Headless) OnOutput(fn func(block []uint32)) { h.onOutput = fn }

// Drained reports whether a previously set source has been consumed.
func (h *Headless) Drained() bool { return h.src == nil }

// RunPeriods executes n periods and returns how many produced a full
// output block.
func (h *Headless) RunPeriods(n int) int {
	produced := 0

	for range n {
		h.src = fillBlock(h.in, h.floats, h.src)
		h.handler.AcceptInput(h.in)

		if h.handler.ProduceOutput(h.out) == h.blockSize {
			produced++
		}
		if h.onOutput != nil {
			h.onOutput(h.out)
		}
	}

	return produced
}
