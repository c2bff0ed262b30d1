// SPDX-License-Identifier: EPL-2.0

// Package midi normalizes raw MIDI input from byte-oriented and
// packet-oriented sources into a uniform event format.
//
// # Ingestion Paths
//
// Two independent paths feed the same normalization step:
//
//   - The byte-stream path (Parser, SerialSource) consumes raw bytes in
//     arrival order. A small state machine recognizes Note On, Note Off
//     and Control Change messages; a status byte arriving where a data
//     byte was expected aborts the partial message and restarts
//     recognition on that byte, so the stream resynchronizes without
//     losing subsequent messages.
//   - The packet path (Normalize, PortSource) consumes pre-framed
//     messages from a discrete source such as a USB MIDI port, one call
//     per packet.
//
// Either path dispatches normalized Events to a Sink the instant a
// complete, valid message is recognized; nothing is buffered inside
// this package.
//
// # Normalization
//
// The common step extracts channel and message type from the status
// byte, reinterprets Note On with zero velocity as Note Off, and zeroes
// the second data byte of the one-data-byte types (Program Change,
// Channel Pressure).
//
// # Hot Plug
//
// PortSource binds to the first MIDI input port whose name matches a
// configured substring, using whatever gomidi driver the host program
// registered. Polling it each housekeeping tick detects both arrival
// and removal; after a removal the source is eligible to rebind to a
// later port of the same kind. A host that wants port input imports a
// driver for its platform:
//
//	import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
package midi
