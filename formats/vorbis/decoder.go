// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/binaural/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	buf      []float32
	eof      bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

// Frames reports the stream length, or -1 when it is unknown.
func (s *source) Frames() int {
	if l := s.dec.Length(); l > 0 {
		return int(l)
	}

	return -1
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.buf) < len(dst) {
		s.buf = make([]float32, len(dst))
	}
	s.buf = s.buf[:len(dst)]

	// Read returns decoded values, always whole frames.
	n, err := s.dec.Read(s.buf)
	for i := range n {
		dst[i] = float64(s.buf[i])
	}

	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("decode vorbis: %w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	if dec.Channels() < 1 {
		return nil, ErrNotVorbisFile
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
		buf:      make([]float32, 4096),
	}, nil
}
