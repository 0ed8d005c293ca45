// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/binaural/audio"
)

// ChannelStats describes one channel.
type ChannelStats struct {
	Peak       float64 // max |x|
	RMS        float64
	DominantHz float64 // 0 when the analysed window is silent or too short
}

// Report is the result of Inspect.
type Report struct {
	SampleRate int
	Channels   int
	Frames     int

	// DeclaredFrames is the length the container announced, -1 when the
	// source does not implement audio.Sized.
	DeclaredFrames int

	Duration time.Duration
	Stats    []ChannelStats
}

// BeatHz returns the absolute difference of the first two channels'
// dominant frequencies, or 0 for anything but stereo.
func (r *Report) BeatHz() float64 {
	if r.Channels != 2 || len(r.Stats) != 2 {
		return 0
	}

	return math.Abs(r.Stats[0].DominantHz - r.Stats[1].DominantHz)
}

// PeakDBFS converts a channel peak to dBFS. Silence gives -Inf.
func (s ChannelStats) PeakDBFS() float64 {
	return 20 * math.Log10(s.Peak)
}

// Inspect drains src and measures it. window is the number of leading
// frames used for frequency detection; zero or less means one second.
// Inspect does not close src.
func Inspect(src audio.Source, window int) (*Report, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if window <= 0 {
		window = src.SampleRate()
	}

	chunk := src.BufSize()
	if chunk < channels {
		chunk = 4096
	}
	chunk -= chunk % channels

	declared := -1
	if sized, ok := src.(audio.Sized); ok {
		declared = sized.Frames()
	}

	var (
		buf     = make([]float64, chunk)
		column  = make([]float64, chunk/channels)
		peaks   = make([]float64, channels)
		squares = make([]float64, channels)
		heads   = make([][]float64, channels)
		frames  int
	)

	for {
		n, err := src.ReadSamples(buf)
		n -= n % channels
		if n > 0 {
			count := n / channels
			for c := range channels {
				col := column[:count]
				for i := range col {
					col[i] = buf[i*channels+c]
				}

				peaks[c] = math.Max(peaks[c], math.Max(floats.Max(col), -floats.Min(col)))
				squares[c] += floats.Dot(col, col)

				if room := window - len(heads[c]); room > 0 {
					heads[c] = append(heads[c], col[:min(room, count)]...)
				}
			}
			frames += count
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	r := &Report{
		SampleRate:     src.SampleRate(),
		Channels:       channels,
		Frames:         frames,
		DeclaredFrames: declared,
		Stats:          make([]ChannelStats, channels),
	}
	if r.SampleRate > 0 {
		r.Duration = time.Duration(float64(frames) / float64(r.SampleRate) * float64(time.Second))
	}

	for c := range channels {
		st := ChannelStats{Peak: peaks[c]}
		if frames > 0 {
			st.RMS = math.Sqrt(squares[c] / float64(frames))
		}
		st.DominantHz = DominantFrequency(heads[c], r.SampleRate)
		r.Stats[c] = st
	}

	return r, nil
}
