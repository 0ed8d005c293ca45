// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestQuantize16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive rounds up", input: 0.5, want: 16384},   // 16383.5
		{name: "half negative rounds away", input: -0.5, want: -16384}, // -16383.5
		{name: "quarter positive", input: 0.25, want: 8192},          // 8191.75
		{name: "small positive", input: 0.001, want: 33},             // 32.767
		{name: "small negative", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: math.MinInt16},
		{name: "positive infinity", input: math.Inf(1), want: math.MaxInt16},
		{name: "negative infinity", input: math.Inf(-1), want: math.MinInt16},
		{name: "nan", input: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Quantize16(tt.input); got != tt.want {
				t.Errorf("Quantize16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestQuantize16Symmetry tests that conversion is symmetric inside [-1, 1]
func TestQuantize16Symmetry(t *testing.T) {
	t.Parallel()

	for _, val := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0} {
		pos := Quantize16(val)
		neg := Quantize16(-val)

		if pos != -neg {
			t.Errorf("Quantize16 not symmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

// TestQuantize16Monotonic tests that function is monotonic
func TestQuantize16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Quantize16(-1.2)

	for f := -1.19; f <= 1.2; f += 0.001 {
		curr := Quantize16(f)
		if curr < prev {
			t.Fatalf("Quantize16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestQuantizeInto(t *testing.T) {
	t.Parallel()

	src := []float64{0, 0.5, -0.5, 2}
	dst := make([]int, 3)

	n := QuantizeInto(dst, src)
	if n != 3 {
		t.Fatalf("QuantizeInto() n = %d, want 3", n)
	}

	want := []int{0, 16384, -16384}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestNormalizeBitDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        int
		bitDepth int
		want     float64
	}{
		{math.MinInt16, 16, -1.0},
		{16384, 16, 0.5},
		{-128, 8, -1.0},
		{4194304, 24, 0.5},
		{math.MinInt32, 32, -1.0},
		{16384, 12, 0.5}, // unknown depth falls back to 16-bit
	}

	for _, tt := range tests {
		if got := NormalizeBitDepth(tt.v, tt.bitDepth); got != tt.want {
			t.Errorf("NormalizeBitDepth(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
		}
	}
}

// TestQuantizeRoundTrip checks quantize then normalize stays within one step.
func TestQuantizeRoundTrip(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.01 {
		back := Normalize16(int(Quantize16(f)))
		if math.Abs(back-f) > 2.0/32768.0 {
			t.Errorf("round trip of %v = %v", f, back)
		}
	}
}

// TestQuantize16_ZeroAllocs verifies no heap allocations
func TestQuantize16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Quantize16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Quantize16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkQuantizeInto(b *testing.B) {
	src := make([]float64, 96000)
	dst := make([]int, len(src))
	for i := range src {
		src[i] = 0.5 * math.Sin(float64(i)*0.1)
	}

	b.ReportAllocs()

	for b.Loop() {
		QuantizeInto(dst, src)
	}
}
