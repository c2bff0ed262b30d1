package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeVorbisStream stands in for the oggvorbis reader, serving canned
// interleaved float32 samples.
type fakeVorbisStream struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	readErr    error
}

func (f *fakeVorbisStream) SampleRate() int { return f.sampleRate }
func (f *fakeVorbisStream) Channels() int   { return f.channels }

func (f *fakeVorbisStream) Read(p []float32) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	n := copy(p, f.samples[f.offset:])
	n = (n / f.channels) * f.channels
	f.offset += n
	return n, nil
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "garbage", data: []byte("OggS but not really a vorbis stream")},
		{name: "empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestReadSamples_PassThrough(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, -0.1, 0.5, -0.5, 1.0, -1.0}
	src := &oggSource{
		dec:        &fakeVorbisStream{sampleRate: 48000, channels: 2, samples: samples},
		sampleRate: 48000,
		channels:   2,
		frameBuf:   make([]float32, 16),
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}
	for i, want := range samples {
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}
}

func TestReadSamples_FrameAlignment(t *testing.T) {
	t.Parallel()

	src := &oggSource{
		dec:        &fakeVorbisStream{sampleRate: 48000, channels: 2, samples: make([]float32, 8)},
		sampleRate: 48000,
		channels:   2,
	}

	// An odd destination length must still read whole frames only.
	n, err := src.ReadSamples(make([]float32, 5))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4 (two whole frames)", n)
	}
}

func TestReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &oggSource{
		dec:      &fakeVorbisStream{sampleRate: 48000, channels: 1, samples: []float32{0.25}},
		channels: 1,
	}

	dst := make([]float32, 4)
	if n, err := src.ReadSamples(dst); n != 1 || err != nil {
		t.Fatalf("first read = (%d, %v), want (1, nil)", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("read past end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestReadSamples_StreamError(t *testing.T) {
	t.Parallel()

	src := &oggSource{
		dec:      &fakeVorbisStream{readErr: io.ErrUnexpectedEOF},
		channels: 2,
	}

	if _, err := src.ReadSamples(make([]float32, 4)); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}
