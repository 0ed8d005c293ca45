// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// component of samples. It returns 0 for fewer than four samples or for
// silence.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	n := len(samples)
	if n < 4 || sampleRate <= 0 {
		return 0
	}

	seq := window.Hann(append([]float64(nil), samples...))

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, seq)

	mags := make([]float64, len(coeff))
	for i, c := range coeff {
		mags[i] = cmplx.Abs(c)
	}
	// ignore DC
	mags[0] = 0

	k := floats.MaxIdx(mags)
	if mags[k] == 0 {
		return 0
	}

	// Parabolic interpolation on the neighbouring bins.
	offset := 0.0
	if k > 0 && k < len(mags)-1 {
		a, b, c := mags[k-1], mags[k], mags[k+1]
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	binHz := fft.Freq(1) * float64(sampleRate)

	return (float64(k) + offset) * binHz
}
