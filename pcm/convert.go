// SPDX-License-Identifier: EPL-2.0

package pcm

// Default wire format: 24 significant bits left-justified in a 32-bit
// word, as delivered by the I2S interface.
const (
	DefaultBits = 24

	sampleShift  = 32 - DefaultBits
	scaleToFloat = 1.0 / (1 << (DefaultBits - 1)) // 2^-23
	scaleToCode  = 1 << (DefaultBits - 1)         // 2^23
	minCode      = -(1 << (DefaultBits - 1))      // -8388608
	maxCode      = 1<<(DefaultBits-1) - 1         // +8388607
)

// ToFloat interprets a left-justified 24-bit sample as a signed integer
// and scales it into [-1.0, 1.0). The arithmetic right shift performs
// the sign extension; no branches.
func ToFloat(raw uint32) float32 {
	return float32(int32(raw)>>sampleShift) * scaleToFloat
}

// FromFloat clamps v to the representable range, scales to the 24-bit
// integer range truncating toward zero, and left-justifies the result.
// Out-of-range input saturates at the minimum or maximum code.
func FromFloat(v float32) uint32 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}

	code := int32(v * scaleToCode)
	if code > maxCode {
		code = maxCode
	} else if code < minCode {
		code = minCode
	}

	return uint32(code) << sampleShift
}

// Deinterleave splits an interleaved stereo block into normalized
// left/right channel buffers. len(block) must be 2*len(left) and
// len(left) == len(right); the caller guarantees the sizes.
func Deinterleave(block []uint32, left, right []float32) {
	for i := range left {
		left[i] = ToFloat(block[2*i])
		right[i] = ToFloat(block[2*i+1])
	}
}

// Interleave packs normalized left/right channel buffers into an
// interleaved stereo block, saturating each sample.
func Interleave(left, right []float32, block []uint32) {
	for i := range left {
		block[2*i] = FromFloat(left[i])
		block[2*i+1] = FromFloat(right[i])
	}
}

// Format describes a packed sample layout with Bits significant bits
// left-justified in a 32-bit word. The zero value is not valid; Bits
// must be in [2, 32].
type Format struct {
	Bits uint
}

// Step returns the quantization step of the format.
func (f Format) Step() float32 {
	return 1.0 / float32(int64(1)<<(f.Bits-1))
}

// ToFloat is the generic-width counterpart of the package-level
// ToFloat.
func (f Format) ToFloat(raw uint32) float32 {
	return float32(int32(raw)>>(32-f.Bits)) * f.Step()
}

// FromFloat is the generic-width counterpart of the package-level
// FromFloat.
func (f Format) FromFloat(v float32) uint32 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}

	limit := int64(1) << (f.Bits - 1)
	code := int64(v * float32(limit))
	if code > limit-1 {
		code = limit - 1
	} else if code < -limit {
		code = -limit
	}

	return uint32(int32(code)) << (32 - f.Bits)
}
