// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Encoding
//
// Encode streams any audio.Source into an io.WriteSeeker. Samples are
// quantized with pcm.Quantize16 (scale 32767, round to nearest, clamped),
// and the header always describes the source's rate and channel count:
//
//	stream, _, err := synth.Open(req)
//	frames, err := wav.WriteFile("beat.wav", stream)
//
// WriteFile goes through a temporary file in the destination directory and
// renames it into place, so a failed write never leaves a truncated file
// behind. Failures come back as *EncodingError.
//
// A source that yields no samples still produces a valid 44 byte file.
//
// # Decoding
//
// Decoder accepts any RIFF/WAVE stream with 16-bit PCM data, skipping
// unknown chunks. The returned audio.Source yields float64 samples in
// [-1, 1). Readers that cannot seek are buffered in memory.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
//	    // 8/24/32-bit or float data
//	}
package wav
