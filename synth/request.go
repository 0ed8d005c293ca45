// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
)

const (
	// SampleRate is the fixed output rate in frames per second.
	SampleRate = 96000

	// Channels is the fixed output channel count.
	Channels = 2

	// BitDepth is the fixed output sample size.
	BitDepth = 16

	// Amplitude scales every tone so that the peak sits at half of full scale.
	Amplitude = 0.5

	// frameTolerance absorbs binary rounding in duration*rate products,
	// e.g. 0.7*96000 = 67199.99999999999.
	frameTolerance = 1e-9

	// maxFrames is the largest frame count whose 16-bit stereo data still
	// fits the 32-bit RIFF size fields.
	maxFrames = (math.MaxUint32 - 36) / (Channels * BitDepth / 8)
)

// Request describes one binaural file.
//
// SoundDuration and SilenceDuration are optional: nil means "not given",
// in which case the sound fills the whole file and no silence is added.
type Request struct {
	LeftFrequency  float64
	RightFrequency float64
	FileDuration   float64
	FileName       string

	SoundDuration   *float64
	SilenceDuration *float64

	// Strict rejects degenerate input with an *InvalidParameterError
	// instead of rendering it.
	Strict bool

	// FalsyDefaults treats an explicit zero SoundDuration or
	// SilenceDuration as absent, matching older presets that relied on it.
	FalsyDefaults bool
}

// Seconds returns a pointer to d, for the optional Request fields.
func Seconds(d float64) *float64 {
	return &d
}

// soundDuration returns the explicit sound duration and whether it counts
// as given.
func (r Request) soundDuration() (float64, bool) {
	return optional(r.SoundDuration, r.FalsyDefaults)
}

func (r Request) silenceDuration() (float64, bool) {
	return optional(r.SilenceDuration, r.FalsyDefaults)
}

func optional(v *float64, falsy bool) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if falsy && *v == 0 {
		return 0, false
	}

	return *v, true
}

// Validate applies the strict rules regardless of r.Strict.
func (r Request) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"left_frequency", r.LeftFrequency},
		{"right_frequency", r.RightFrequency},
	}
	for _, c := range checks {
		if err := finite(c.name, c.v); err != nil {
			return err
		}
		if c.v <= 0 {
			return &InvalidParameterError{Name: c.name, Value: c.v, Reason: "must be positive"}
		}
		if c.v >= SampleRate/2 {
			return &InvalidParameterError{Name: c.name, Value: c.v, Reason: "must be below the Nyquist frequency"}
		}
	}

	if err := finite("file_duration", r.FileDuration); err != nil {
		return err
	}
	if r.FileDuration <= 0 {
		return &InvalidParameterError{Name: "file_duration", Value: r.FileDuration, Reason: "must be positive"}
	}

	if sound, ok := r.soundDuration(); ok {
		if err := finite("sound_duration", sound); err != nil {
			return err
		}
		if sound <= 0 {
			return &InvalidParameterError{Name: "sound_duration", Value: sound, Reason: "must be positive"}
		}
		if sound > r.FileDuration {
			return &InvalidParameterError{Name: "sound_duration", Value: sound, Reason: "must not exceed file_duration"}
		}
	}

	if silence, ok := r.silenceDuration(); ok {
		if err := finite("silence_duration", silence); err != nil {
			return err
		}
		if silence < 0 {
			return &InvalidParameterError{Name: "silence_duration", Value: silence, Reason: "must not be negative"}
		}
	}

	return nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParameterError{Name: name, Value: v, Reason: "must be a finite number"}
	}

	return nil
}

// FramesFor converts a duration in seconds to a whole number of frames at
// SampleRate, truncating. Negative durations give zero frames.
func FramesFor(seconds float64) int {
	f := math.Floor(seconds*SampleRate + frameTolerance)
	if f <= 0 {
		return 0
	}

	return int(f)
}
