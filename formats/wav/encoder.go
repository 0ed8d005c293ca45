// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/pcm"
)

const (
	bitDepth     = 16
	formatPCM    = 1
	defaultChunk = 4096 // samples
)

// Encode writes src to w as a 16-bit PCM WAV stream at the source's rate
// and channel count. Samples are quantized with pcm.Quantize16.
//
// A complete header is written even when src yields no samples. Encode
// returns the number of frames written. It does not close src.
func Encode(w io.WriteSeeker, src audio.Source) (int, error) {
	channels := src.Channels()
	if channels < 1 || channels > 0xffff {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	chunk := src.BufSize()
	if chunk <= 0 {
		chunk = defaultChunk
	}
	// keep reads frame aligned
	chunk -= chunk % channels
	if chunk == 0 {
		chunk = channels
	}

	format := &goaudio.Format{
		NumChannels: channels,
		SampleRate:  src.SampleRate(),
	}
	enc := gowav.NewEncoder(w, src.SampleRate(), bitDepth, channels, formatPCM)

	// go-audio only emits the RIFF header on the first Write.
	if err := enc.Write(&goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth}); err != nil {
		return 0, fmt.Errorf("write wav header: %w", err)
	}

	samples := make([]float64, chunk)
	buf := &goaudio.IntBuffer{
		Data:           make([]int, chunk),
		Format:         format,
		SourceBitDepth: bitDepth,
	}

	frames := 0
	for {
		n, err := src.ReadSamples(samples)
		if n > 0 {
			n -= n % channels
			buf.Data = buf.Data[:pcm.QuantizeInto(buf.Data[:n], samples[:n])]
			if werr := enc.Write(buf); werr != nil {
				return frames, fmt.Errorf("write wav data: %w", werr)
			}
			frames += n / channels
			buf.Data = buf.Data[:cap(buf.Data)]
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return frames, fmt.Errorf("read samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("close wav encoder: %w", err)
	}

	return frames, nil
}

// EncodeBytes encodes src into memory and returns the WAV file bytes.
func EncodeBytes(src audio.Source) ([]byte, error) {
	wb := &audio.WriteBuffer{}
	if _, err := Encode(wb, src); err != nil {
		return nil, err
	}

	return wb.Bytes(), nil
}
