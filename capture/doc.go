// SPDX-License-Identifier: EPL-2.0

// Package capture records interleaved audio blocks to a WAV file
// without stalling the caller.
//
// The real-time path hands finished blocks to Push, which never
// blocks: each block is copied into a buffer from a fixed free list
// and queued for a background goroutine that encodes it through
// github.com/go-audio/wav. When the queue is full the block is dropped
// and counted instead of delaying the audio period.
//
//	f, _ := os.Create("take.wav")
//	rec := capture.NewRecorder(f, 48000, 256)
//	// per period, on the audio path:
//	rec.Push(block)
//	// when done:
//	rec.Close()
//	f.Close()
//
// Samples arrive as 24-bit left-justified values in 32-bit words and
// are written as 16-bit stereo PCM, dropping the low bits.
package capture
