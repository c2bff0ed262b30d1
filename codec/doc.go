// SPDX-License-Identifier: EPL-2.0

// Package codec configures and controls the WM8960 audio codec over a
// register-oriented control bus.
//
// The codec is addressed with 7-bit register numbers carrying 9-bit
// values; on the wire one write is two I2C bytes (register<<1 with the
// value's high bit folded in, then the value's low byte). The bus is
// abstracted behind RegisterBus so hosts supply the actual transport;
// I2CBus adapts a plain I2C writer to it.
//
// Probe runs the static initialization sequence: reset, power
// management, PLL configuration for the configured sample rate, signal
// routing for low-noise line input, and unity-gain output volumes.
// Only 44100 and 48000 Hz have PLL constants; other rates are rejected.
//
// The control surface (volume in dB, mute, automatic level control)
// validates its input range and reports failure instead of silently
// clamping an out-of-range request.
package codec
