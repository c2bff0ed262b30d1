// SPDX-License-Identifier: EPL-2.0

// Package audrt is the real-time audio and MIDI core of a small
// digital audio device: a double-buffered sample exchange between the
// I2S driver and a signal-processing engine, MIDI ingestion from
// serial and USB sources, codec control and lock-free period timing.
//
// # Architecture
//
// The audio driver owns the clock. Once per period it pushes one
// interleaved input block and pulls one output block:
//
//	core, _ := audrt.New(config.Default(), nil)
//	core.SetEngine(myEngine) // implements exchange.Processor
//
//	// on the audio context, once per period:
//	core.AcceptInput(inBlock)
//	core.ProduceOutput(outBlock)
//
// Blocks are interleaved stereo, each sample a 24-bit left-justified
// value in a 32-bit word (see package pcm). The exchange converts to
// normalized float32 channel buffers, runs the engine, and converts
// back. Without an engine the input passes through unchanged.
//
// Everything that is not sample processing happens in the service
// loop:
//
//	go core.Run(ctx)
//
// which polls the MIDI sources and logs periodic timing reports.
//
// # MIDI
//
// MIDI bytes arrive from a serial UART, a USB gadget endpoint or a
// USB host port, get normalized into midi.Event values and queue up
// for the engine, which receives them on the audio context at the
// start of the next period. The queue is bounded and never blocks the
// sources; overflow drops the newest events and counts them.
//
// # Subpackages
//
//   - pcm: wire-format conversion
//   - exchange: the double-buffered block exchange
//   - midi: byte-stream parser, packet normalizer, sources
//   - stats: lock-free period timing
//   - codec: WM8960 register control
//   - config: TOML configuration
//   - source, formats/*: file decoding for development hosts
//   - host: oto playback and headless period drivers
//   - capture: WAV recording off the audio path
package audrt
