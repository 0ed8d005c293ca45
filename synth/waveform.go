// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"slices"

	"github.com/tphakala/simd/f64"
)

// Matrix holds stereo frames, left in column 0 and right in column 1.
type Matrix [][Channels]float64

// Frames returns the number of rows.
func (m Matrix) Frames() int { return len(m) }

// Channel copies one column out of the matrix.
func (m Matrix) Channel(c int) []float64 {
	out := make([]float64, len(m))
	for i, frame := range m {
		out[i] = frame[c]
	}

	return out
}

// Interleaved flattens the matrix into L,R,L,R... order.
func (m Matrix) Interleaved() []float64 {
	out := make([]float64, 0, len(m)*Channels)
	for _, frame := range m {
		out = append(out, frame[0], frame[1])
	}

	return out
}

// TimeAxis returns t_i = i/SampleRate for i in [0, frames).
func TimeAxis(frames int) []float64 {
	t := make([]float64, max(frames, 0))
	for i := range t {
		t[i] = float64(i) / SampleRate
	}

	return t
}

// Waveform evaluates Amplitude*sin(2*pi*frequency*t) over the time axis.
// The phase is zero at t[0] == 0, so every block starts from the same point.
func Waveform(frequency float64, t []float64) []float64 {
	w := make([]float64, len(t))
	if len(w) == 0 {
		return w
	}

	omega := 2 * math.Pi * frequency
	for i, ti := range t {
		w[i] = math.Sin(omega * ti)
	}
	f64.Scale(w, w, Amplitude)

	return w
}

// Block appends silenceFrames zero samples to a copy of wave.
func Block(wave []float64, silenceFrames int) []float64 {
	block := make([]float64, len(wave)+max(silenceFrames, 0))
	copy(block, wave)

	return block
}

// Tile concatenates n copies of block.
func Tile(block []float64, n int) []float64 {
	if n <= 0 || len(block) == 0 {
		return []float64{}
	}

	return slices.Repeat(block, n)
}

// Interleave pairs left and right sample by sample.
func Interleave(left, right []float64) (Matrix, error) {
	if len(left) != len(right) {
		return nil, &ChannelLengthMismatchError{Left: len(left), Right: len(right)}
	}

	m := make(Matrix, len(left))
	for i := range m {
		m[i] = [Channels]float64{left[i], right[i]}
	}

	return m, nil
}

// Blocks builds the left and right blocks for a resolved plan.
func Blocks(p Plan, leftFrequency, rightFrequency float64) (left, right []float64) {
	t := TimeAxis(p.SoundFrames)
	left = Block(Waveform(leftFrequency, t), p.SilenceFrames)
	right = Block(Waveform(rightFrequency, t), p.SilenceFrames)

	return left, right
}

// Render resolves r and materializes the whole track in memory.
func Render(r Request) (Matrix, Plan, error) {
	p, err := Resolve(r)
	if err != nil {
		return nil, Plan{}, err
	}

	left, right := Blocks(p, r.LeftFrequency, r.RightFrequency)

	m, err := Interleave(Tile(left, p.Repetitions), Tile(right, p.Repetitions))
	if err != nil {
		return nil, Plan{}, err
	}

	return m, p, nil
}
