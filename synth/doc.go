// SPDX-License-Identifier: EPL-2.0

// Package synth builds binaural-beat tracks.
//
// A track is one block per channel, a sine tone followed by optional
// silence, repeated as many whole times as fit in the requested file
// duration:
//
//	| tone L | silence | tone L | silence | ...   left
//	| tone R | silence | tone R | silence | ...   right
//
// Every block restarts the sine at phase zero. The output format is fixed:
// 96000 Hz, two channels, samples in [-0.5, 0.5] before quantization.
//
// # Rendering
//
// Render returns the whole track as a Matrix:
//
//	m, plan, err := synth.Render(synth.Request{
//	    LeftFrequency:   300,
//	    RightFrequency:  305,
//	    FileDuration:    30,
//	    SoundDuration:   synth.Seconds(5),
//	    SilenceDuration: synth.Seconds(1),
//	})
//
// Open returns a Stream with the same frames for encoders that consume an
// audio.Source, so only one block per channel is held in memory.
//
// # Defaults
//
// A nil SoundDuration means the tone fills the file; a nil SilenceDuration
// means no silence. Set FalsyDefaults to also treat explicit zeros that
// way. Set Strict to reject non-positive frequencies and durations with an
// *InvalidParameterError.
package synth
