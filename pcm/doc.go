// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between the packed wire sample format of the
// audio interface and the normalized float32 format the processing
// engine works on.
//
// # Wire Format
//
// The audio interface exchanges 32-bit words carrying a left-justified
// signed sample: the significant bits occupy the top of the word and
// the remaining low bits are zero. The default format is 24 significant
// bits, the layout the I2S bus delivers:
//
//	bit 31 ........ bit 8 | bit 7 .. bit 0
//	  24-bit sample       |     zero
//
// # Normalized Samples
//
// Float samples live in [-1.0, 1.0):
//   - 0.0 is silence
//   - -1.0 is the most negative code
//   - the most positive code maps just below 1.0
//
// ToFloat and FromFloat are the scalar conversions; Deinterleave and
// Interleave operate on whole interleaved stereo blocks. The scalar
// hot path is branch-free in the ToFloat direction and saturating
// (never wrapping) in the FromFloat direction.
//
// # Round Trip
//
// For any f in the representable range, ToFloat(FromFloat(f)) differs
// from f by at most one quantization step (2^-23 for the default
// format).
//
// Other bit widths are available through the Format type:
//
//	f := pcm.Format{Bits: 16}
//	raw := f.FromFloat(0.5)
package pcm
