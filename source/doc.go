// SPDX-License-Identifier: EPL-2.0

// Package source defines the audio input contract a development host
// feeds the exchange from, plus adapters around it.
//
// On the target hardware the input side of the exchange is fed by the
// codec's ADC. A host running on a workstation has no I2S bus, so it
// pulls normalized interleaved samples from a Source instead: a
// decoded file (see the formats subpackages), generated silence, or
// anything else implementing the interface.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (n int, err error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved float32 samples in [-1, 1]
// and returns the number of values written; n == 0 with io.EOF means
// the stream is finished.
//
// # Registry
//
// Decoders register under a format key so callers can pick one by file
// extension:
//
//	reg := source.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # Adapters
//
// Silence is an endless all-zero source. Upmix turns a mono source
// into interleaved stereo, which the exchange's stereo input side
// requires.
package source
