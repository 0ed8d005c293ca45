// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/binaural/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

// encodeAIFF builds an AIFF file with go-audio's encoder.
func encodeAIFF(t *testing.T, sampleRate, bitDepth, channels int, samples []int) []byte {
	t.Helper()

	wb := &audio.WriteBuffer{}
	enc := aiff.NewEncoder(wb, sampleRate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("aiff Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("aiff Close() error = %v", err)
	}

	return wb.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not AIFF data"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768, 100, -100, 0}
	data := encodeAIFF(t, 44100, 16, 2, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if sized, ok := src.(audio.Sized); !ok || sized.Frames() != 4 {
		t.Errorf("Frames() = %v, want 4", src)
	}

	var got []float64
	dst := make([]float64, 4)
	for range 100 {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float64(s) / 32768; got[i] != want {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		value    int
		want     float64
	}{
		{8, 64, 0.5},
		{16, -16384, -0.5},
		{24, 4194304, 0.5},
		{32, -1073741824, -0.5},
	}

	for _, tt := range tests {
		src := &source{
			dec:      &mockAiffReader{samples: []int{tt.value}},
			channels: 1,
			bitDepth: tt.bitDepth,
		}

		dst := make([]float64, 1)
		n, err := src.ReadSamples(dst)
		if err != nil || n != 1 {
			t.Fatalf("%d-bit: ReadSamples() = (%d, %v)", tt.bitDepth, n, err)
		}
		if math.Abs(dst[0]-tt.want) > 1e-12 {
			t.Errorf("%d-bit: sample = %v, want %v", tt.bitDepth, dst[0], tt.want)
		}
	}
}

func TestSource_ReadSamples_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{samples: []int{1, 2, 3}}, channels: 1, bitDepth: 16}

	n, err := src.ReadSamples(make([]float64, 8))
	if n != 3 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (3, io.EOF)", n, err)
	}

	n, err = src.ReadSamples(make([]float64, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{samples: []int{1}}, channels: 1, bitDepth: 16}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{err: io.ErrUnexpectedEOF}, channels: 1, bitDepth: 16}

	if _, err := src.ReadSamples(make([]float64, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{samples: make([]int, 10000)}, channels: 2, bitDepth: 16}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before read = %d, want 4096", src.BufSize())
	}

	if _, err := src.ReadSamples(make([]float64, 8192)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if src.BufSize() != 8192 {
		t.Errorf("BufSize() after read = %d, want 8192", src.BufSize())
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	reader := &mockAiffReader{samples: make([]int, 44100*2)}
	dst := make([]float64, 4096)

	b.ReportAllocs()
	for b.Loop() {
		reader.offset = 0
		src := &source{dec: reader, sampleRate: 44100, channels: 2, bitDepth: 16}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
