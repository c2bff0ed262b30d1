// SPDX-License-Identifier: EPL-2.0

package host

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audrt/source"
)

// Oto plays the handler's output through the machine's sound card.
// The oto player pulls PCM bytes via Read, and each pull drives whole
// periods through the handler, so processing happens at playback rate.
//
// oto allows one context per process, so at most one Oto host can
// exist.
type Oto struct {
	handler   Handler
	blockSize int

	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex // guards src and pending against the player goroutine
	src     source.Source
	floats  []float32
	in      []uint32
	out     []uint32
	encoded []byte
	pending []byte
}

// NewOto opens the audio device for 16-bit stereo playback at the
// given rate and returns a stopped host.
func NewOto(handler Handler, sampleRate, blockSize int) (*Oto, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	o := &Oto{
		handler:   handler,
		blockSize: blockSize,
		ctx:       ctx,
		floats:    make([]float32, blockSize),
		in:        make([]uint32, blockSize),
		out:       make([]uint32, blockSize),
		encoded:   make([]byte, blockSize*2),
	}
	o.player = ctx.NewPlayer(o)

	return o, nil
}

// SetSource selects the input feed. A nil source means silence. Safe
// to call while playing.
func (o *Oto) SetSource(src source.Source) {
	o.mu.Lock()
	o.src = src
	o.mu.Unlock()
}

// Start begins pulling periods. Idempotent.
func (o *Oto) Start() {
	if !o.player.IsPlaying() {
		o.player.Play()
	}
}

// Stop pauses playback without tearing down the device.
func (o *Oto) Stop() {
	o.player.Pause()
}

// Close stops playback and releases the player. The oto context has
// no teardown; the process keeps it until exit.
func (o *Oto) Close() error {
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Read satisfies the player's demand for PCM bytes by running as many
// periods as needed. Called from oto's playback goroutine.
func (o *Oto) Read(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := 0
	for n < len(p) {
		if len(o.pending) == 0 {
			o.runPeriod()
		}
		c := copy(p[n:], o.pending)
		o.pending = o.pending[c:]
		n += c
	}

	return n, nil
}

func (o *Oto) runPeriod() {
	o.src = fillBlock(o.in, o.floats, o.src)
	o.handler.AcceptInput(o.in)
	o.handler.ProduceOutput(o.out)

	// Pack to the device layout: high 16 bits of each sample, little
	// endian.
	for i, raw := range o.out {
		binary.LittleEndian.PutUint16(o.encoded[i*2:i*2+2], uint16(raw>>16))
	}
	o.pending = o.encoded
}
