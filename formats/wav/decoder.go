package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audrt/source"
)

type wavSource struct {
	dec      *gowav.Decoder
	buf      *goaudio.IntBuffer
	channels int
	scale    float32
}

func (s *wavSource) SampleRate() int { return int(s.dec.SampleRate) }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf.Data) }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.buf.Data[i]) * s.scale
	}

	return n, nil
}

type Decoder struct{}

// Decode reads a PCM WAV stream. The go-audio decoder needs to seek
// across chunks, so a plain reader is buffered in full first.
func (Decoder) Decode(r io.Reader) (source.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(raw)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedWavLayout
	}

	var scale float32
	switch dec.BitDepth {
	case 16:
		scale = 1.0 / 32768.0
	case 24:
		scale = 1.0 / 8388608.0
	default:
		return nil, ErrUnsupportedBitDepth
	}

	return &wavSource{
		dec:      dec,
		channels: int(dec.NumChans),
		scale:    scale,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: int(dec.NumChans),
				SampleRate:  int(dec.SampleRate),
			},
			SourceBitDepth: int(dec.BitDepth),
			Data:           make([]int, 4096),
		},
	}, nil
}
