// SPDX-License-Identifier: EPL-2.0

// Package exchange owns the double-buffered sample exchange between
// the audio interface and the processing engine.
//
// The interface side calls AcceptInput with one raw block per period
// and ProduceOutput to collect the processed block before the next
// deadline. Two physical storage regions exist per direction; at any
// instant one region per direction is written by the interface side
// while the other is read by the processing side, so the two sides
// never touch the same memory and no lock is needed. The slot selector
// flips exactly once per period, at the end of ProduceOutput.
//
// The engine is any value implementing Processor. When no engine is
// bound the exchange degrades to pass-through: the input channel
// buffers are copied to the output channel buffers unchanged.
//
// Neither entry point blocks, allocates, or retries; a block of
// unexpected length is dropped and reported through the return value.
package exchange
