// SPDX-License-Identifier: EPL-2.0

// Package host drives the audio exchange from environments that are
// not the target hardware.
//
// On the device the I2S DMA engine calls into the exchange once per
// period. A development host has no such engine, so this package
// provides substitutes that make the same two calls per period against
// the Handler interface:
//
//	type Handler interface {
//	    AcceptInput(block []uint32) bool
//	    ProduceOutput(block []uint32) int
//	}
//
// Headless runs periods synchronously, for tests and benchmarks. Oto
// runs them at playback rate against the machine's sound card through
// github.com/ebitengine/oto/v3, so an engine can be heard while it is
// developed.
//
// Both hosts can pull their input side from a source.Source (a decoded
// file, typically); without one the input is silence.
package host
