// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/pcm"
)

type wavSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	frames     int
	buf        *goaudio.IntBuffer // PCM 16-bit
	eof        bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) Frames() int     { return s.frames }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("read pcm: %w", err)
	}

	for i := range n {
		dst[i] = pcm.Normalize16(s.buf.Data[i])
	}

	// go-audio reports the end of the data chunk as a short read with no error.
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.AsReadSeeker(r)
	if err != nil {
		return nil, err
	}

	magic := make([]byte, 12)
	if _, err := io.ReadFull(rs, magic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if !bytes.Equal(magic[:4], []byte("RIFF")) || !bytes.Equal(magic[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	// IsValidFile rejects zero length data chunks, which are legal here.
	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != formatPCM || dec.BitDepth != bitDepth {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.NumChans < 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, dec.NumChans)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	channels := int(dec.NumChans)
	sampleRate := int(dec.SampleRate)

	return &wavSource{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		frames:     dec.PCMSize / (channels * bitDepth / 8),
		buf: &goaudio.IntBuffer{
			Data: make([]int, 4096),
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}, nil
}
