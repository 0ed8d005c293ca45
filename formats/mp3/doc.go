// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo float64 samples in [-1, 1)
// at the stream's own sample rate. It is registered for the inspect
// command; there is no MP3 encoder.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	report, err := analysis.Inspect(src, 0)
//
// When the input is an io.Seeker the source also implements audio.Sized.
package mp3
