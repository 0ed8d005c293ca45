// SPDX-License-Identifier: EPL-2.0

// Package analysis measures a decoded audio.Source: length, per channel
// peak and RMS level, and the dominant frequency of each channel.
//
// For a binaural file the difference between the left and right dominant
// frequencies is the beat frequency:
//
//	report, err := analysis.Inspect(src, 0)
//	fmt.Printf("beat: %.2f Hz\n", report.BeatHz())
//
// Frequencies come from a Hann windowed FFT (gonum.org/v1/gonum/dsp/fourier)
// over the first window frames, refined by parabolic interpolation between
// bins.
package analysis
