// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into a source.Source for
// feeding the audio exchange on a development host.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which already
// produces interleaved float32 samples in [-1.0, 1.0], so the wrapper
// only frame-aligns the reads.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	src, err := decoder.Decode(file)
//
// Channel count and sample rate follow the stream header; the decoder
// performs no rate conversion. Encoding is not supported.
package vorbis
