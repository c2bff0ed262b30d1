// SPDX-License-Identifier: EPL-2.0

package host

import (
	"io"

	"github.com/ik5/audrt/pcm"
	"github.com/ik5/audrt/source"
)

// Handler is the per-period capability set a host calls: hand one
// interleaved input block in, pull one processed output block out.
// Blocks use the packed sample format described in package pcm.
type Handler interface {
	AcceptInput(block []uint32) bool
	ProduceOutput(block []uint32) int
}

// fillBlock fills dst from src, packing each float sample into the
// wire format. Short reads and EOF pad with silence; the returned
// source is nil once drained so callers stop reading it.
func fillBlock(dst []uint32, floats []float32, src source.Source) source.Source {
	n := 0
	if src != nil {
		var err error
		n, err = src.ReadSamples(floats[:len(dst)])
		if err == io.EOF {
			src = nil
		} else if err != nil {
			n = 0
			src = nil
		}
	}

	for i := range n {
		dst[i] = pcm.FromFloat(floats[i])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}

	return src
}
