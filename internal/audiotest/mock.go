// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by a FailingSource.
var ErrInjected = errors.New("audiotest: injected failure")

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // Total frames to generate
	generated  int // Frames generated so far
	waveform   func(frame int, channel int) float64
	closed     bool
}

// NewMockSource creates a new mock audio source.
// frames is the total number of frames to generate.
// waveform returns the sample value for a frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float64 {
		return 0
	})
}

// NewSineSource creates a mock source with the same sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency, amplitude float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// NewStereoToneSource creates a two channel source with an independent
// sine frequency per channel.
func NewStereoToneSource(sampleRate, frames int, left, right, amplitude float64) *MockSource {
	return NewMockSource(sampleRate, 2, frames, func(frame int, channel int) float64 {
		freq := left
		if channel == 1 {
			freq = right
		}
		t := float64(frame) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*freq*t)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float64 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.frames-m.generated)

	for frame := range framesToWrite {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.frames {
		return written, io.EOF
	}

	return written, nil
}

// FailingSource yields a fixed number of frames of silence and then fails
// with ErrInjected.
type FailingSource struct {
	MockSource
}

func NewFailingSource(sampleRate, channels, framesBeforeFailure int) *FailingSource {
	return &FailingSource{MockSource: *NewSilentSource(sampleRate, channels, framesBeforeFailure)}
}

func (f *FailingSource) ReadSamples(dst []float64) (int, error) {
	n, err := f.MockSource.ReadSamples(dst)
	if errors.Is(err, io.EOF) {
		if n > 0 {
			return n, nil
		}
		return 0, ErrInjected
	}

	return n, err
}
