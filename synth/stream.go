// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"

	"github.com/ik5/binaural/audio"
)

const streamBufSize = 8192 // samples, always a multiple of Channels

// Stream is an audio.Source over a tiled stereo block. It yields exactly
// the frames Render would, but only keeps one block per channel in memory.
type Stream struct {
	left  []float64
	right []float64

	total int // frames to emit
	pos   int // frames emitted
}

var (
	_ audio.Source = (*Stream)(nil)
	_ audio.Sized  = (*Stream)(nil)
)

// NewStream tiles the given blocks p.Repetitions times.
func NewStream(p Plan, left, right []float64) (*Stream, error) {
	if len(left) != len(right) {
		return nil, &ChannelLengthMismatchError{Left: len(left), Right: len(right)}
	}

	total := 0
	if len(left) > 0 {
		total = p.Repetitions * len(left)
	}

	return &Stream{
		left:  left,
		right: right,
		total: total,
	}, nil
}

// Open resolves r and returns a stream over its track.
func Open(r Request) (*Stream, Plan, error) {
	p, err := Resolve(r)
	if err != nil {
		return nil, Plan{}, err
	}

	left, right := Blocks(p, r.LeftFrequency, r.RightFrequency)

	s, err := NewStream(p, left, right)
	if err != nil {
		return nil, Plan{}, err
	}

	return s, p, nil
}

func (s *Stream) SampleRate() int { return SampleRate }
func (s *Stream) Channels() int   { return Channels }
func (s *Stream) BufSize() int    { return streamBufSize }
func (s *Stream) Close() error    { return nil }

// Frames is the total number of frames the stream produces.
func (s *Stream) Frames() int { return s.total }

// Remaining is the number of frames not yet read.
func (s *Stream) Remaining() int { return s.total - s.pos }

// Reset rewinds the stream to the first frame.
func (s *Stream) Reset() { s.pos = 0 }

func (s *Stream) ReadSamples(dst []float64) (int, error) {
	if len(dst)%Channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.pos >= s.total {
		return 0, io.EOF
	}

	frames := min(len(dst)/Channels, s.total-s.pos)
	block := len(s.left)
	b := s.pos % block

	for i := range frames {
		dst[i*Channels] = s.left[b]
		dst[i*Channels+1] = s.right[b]

		b++
		if b == block {
			b = 0
		}
	}

	s.pos += frames

	if s.pos >= s.total {
		return frames * Channels, io.EOF
	}

	return frames * Channels, nil
}
