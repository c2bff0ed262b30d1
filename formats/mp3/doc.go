// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into a source.Source for feeding
// the audio exchange on a development host.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always
// produces 16-bit stereo PCM; mono files come out with both channels
// carrying the same signal, so the decoder's output plugs straight
// into the stereo input side of the exchange.
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are float32 in [-1.0, 1.0]. The sample rate is whatever the
// file carries, typically 44.1kHz or 48kHz; the decoder performs no
// rate conversion.
//
// Encoding is not supported.
package mp3
