// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/pcm"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec  mp3Reader
	buf  []byte
	tail []byte // a partial sample carried over between reads
	eof  bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

// Frames reports the decoded length, or -1 when the input could not seek.
func (s *source) Frames() int {
	l := s.dec.Length()
	if l < 0 {
		return -1
	}

	return int(l / bytesPerFrame)
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := copy(s.buf, s.tail)
	s.tail = s.tail[:0]

	n, err := s.dec.Read(s.buf[off:])
	n += off
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decode mp3: %w", err)
	}
	if errors.Is(err, io.EOF) {
		s.eof = true
	}

	samples := n / 2
	for i := range samples {
		dst[i] = pcm.Normalize16(int(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))))
	}
	if !s.eof && n%2 == 1 {
		s.tail = append(s.tail, s.buf[n-1])
	}

	if s.eof {
		return samples, io.EOF
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec: dec,
		buf: make([]byte, 8192),
	}, nil
}
