// SPDX-License-Identifier: EPL-2.0

// Package binaural generates binaural-beat WAV files.
//
// Two sine tones of slightly different frequency are written to the left
// and right channels of a 96 kHz, 16-bit stereo file. The listener hears
// the difference between them as a beat. The tone can be pulsed with
// periods of silence, and the tone+silence block is repeated to fill the
// requested duration.
//
// # Quick Start
//
//	summary, err := binaural.Generate(synth.Request{
//	    LeftFrequency:  300,
//	    RightFrequency: 305,
//	    FileDuration:   30,
//	    FileName:       "test.wav",
//	}, logger)
//
// Generate streams the track into the file, so memory use does not grow
// with the duration. Use synth.Render to get the samples in memory instead.
//
// # Inspecting Files
//
// InspectFile decodes WAV, MP3, Ogg Vorbis or AIFF files, picking the
// decoder from the file extension, and reports levels and the dominant
// frequency per channel:
//
//	report, err := binaural.InspectFile("test.wav", 0)
//	fmt.Printf("beat: %.1f Hz\n", report.BeatHz())
//
// # Subpackages
//
//   - synth: request resolution and waveform synthesis
//   - formats/wav: 16-bit PCM encoder and decoder
//   - formats/mp3, formats/vorbis, formats/aiff: decoders
//   - analysis: level and frequency measurement
//   - config: TOML presets
package binaural
