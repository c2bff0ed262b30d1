// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files into a source.Source for feeding
// the audio exchange on a development host.
//
// It wraps github.com/go-audio/wav for chunk parsing, so files with
// extra metadata chunks decode fine. Samples come out as float32 in
// [-1.0, 1.0], interleaved per the file's channel count.
//
// # Supported Formats
//
//   - PCM 16-bit and 24-bit
//   - Mono and stereo
//   - Any sample rate
//
// Compressed WAV variants (A-law, float, ADPCM) are rejected with
// ErrUnsupportedWavLayout.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Decode takes any io.Reader; readers that cannot seek are buffered in
// memory first, so very large files are better opened as *os.File.
package wav
