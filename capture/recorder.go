// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"io"
	"sync/atomic"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// queueDepth is how many blocks may be in flight between Push and the
// encoder before further pushes are dropped.
const queueDepth = 8

// Recorder streams audio blocks to a WAV encoder from a background
// goroutine. Push and Close belong to one goroutine; the encoder runs
// in another.
type Recorder struct {
	enc    *gowav.Encoder
	free   chan []uint32
	blocks chan []uint32
	done   chan struct{}

	dropped  atomic.Uint64
	accepted atomic.Uint64
	writeErr atomic.Pointer[error]
	closed   bool

	buf *goaudio.IntBuffer
}

// NewRecorder starts a recorder writing 16-bit stereo PCM at the given
// rate. blockSize is the interleaved block length Push will be called
// with.
func NewRecorder(w io.WriteSeeker, sampleRate, blockSize int) *Recorder {
	r := &Recorder{
		enc:    gowav.NewEncoder(w, sampleRate, 16, 2, 1),
		free:   make(chan []uint32, queueDepth),
		blocks: make(chan []uint32, queueDepth),
		done:   make(chan struct{}),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: 2,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
			Data:           make([]int, blockSize),
		},
	}

	for range queueDepth {
		r.free <- make([]uint32, blockSize)
	}

	go r.run()
	return r
}

// Push queues a copy of block for encoding. It never blocks; when the
// queue is full the block is dropped, counted and false is returned.
func (r *Recorder) Push(block []uint32) bool {
	if r.closed {
		return false
	}

	select {
	case buf := <-r.free:
		copy(buf, block)
		r.blocks <- buf
		r.accepted.Add(1)
		return true
	default:
		r.dropped.Add(1)
		return false
	}
}

// Dropped reports how many blocks were discarded because the encoder
// fell behind.
func (r *Recorder) Dropped() uint64 { return r.dropped.Load() }

// Accepted reports how many blocks were queued for encoding.
func (r *Recorder) Accepted() uint64 { return r.accepted.Load() }

// Close drains the queue, finalizes the WAV header and reports the
// first encoding error, if any. The underlying writer stays open.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	close(r.blocks)
	<-r.done

	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if perr := r.writeErr.Load(); perr != nil {
		return *perr
	}
	return nil
}

func (r *Recorder) run() {
	defer close(r.done)

	for block := range r.blocks {
		r.encode(block)
		r.free <- block
	}
}

func (r *Recorder) encode(block []uint32) {
	if r.writeErr.Load() != nil {
		return
	}

	if cap(r.buf.Data) < len(block) {
		r.buf.Data = make([]int, len(block))
	}
	r.buf.Data = r.buf.Data[:len(block)]

	// 24-bit left-justified down to 16-bit, arithmetic shift keeps
	// the sign.
	for i, raw := range block {
		r.buf.Data[i] = int(int32(raw) >> 16)
	}

	if err := r.enc.Write(r.buf); err != nil {
		wrapped := fmt.Errorf("%w", err)
		r.writeErr.Store(&wrapped)
	}
}
