// SPDX-License-Identifier: EPL-2.0

package source

import "fmt"

// Upmix presents a mono Source as interleaved stereo by duplicating
// each sample into both channels. A source that is already stereo
// passes through untouched.
type Upmix struct {
	src Source
	tmp []float32
}

func NewUpmix(src Source) *Upmix {
	return &Upmix{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (u *Upmix) SampleRate() int { return u.src.SampleRate() }
func (u *Upmix) Channels() int   { return 2 }
func (u *Upmix) BufSize() int    { return u.src.BufSize() }
func (u *Upmix) Close() error {
	err := u.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (u *Upmix) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if u.src.Channels() == 2 {
		return u.src.ReadSamples(dst)
	}

	frames := len(dst) / 2

	if cap(u.tmp) < frames {
		newCap := frames
		if newCap < 8192 {
			newCap = 8192
		}
		u.tmp = make([]float32, newCap)
	} else if len(u.tmp) < frames {
		u.tmp = u.tmp[:frames]
	}

	n, err := u.src.ReadSamples(u.tmp[:frames])
	if n == 0 {
		return 0, err
	}

	for f := range n {
		dst[f*2] = u.tmp[f]
		dst[f*2+1] = u.tmp[f]
	}

	return n * 2, err
}
