// SPDX-License-Identifier: EPL-2.0

package pcm

import "math"

const (
	// Scale16 maps 1.0 to the largest positive int16.
	Scale16 = math.MaxInt16

	// norm16 maps the most negative int16 to exactly -1.0 when decoding.
	norm16 = 32768.0
)

// Quantize16 converts a sample in [-1, 1] to int16: scale by 32767,
// round to nearest (half away from zero) and clamp to [-32768, 32767].
// NaN becomes 0.
func Quantize16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * Scale16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// QuantizeInto quantizes src into dst as int values, the representation
// go-audio buffers use. It returns the number of values written, which is
// min(len(src), len(dst)).
func QuantizeInto(dst []int, src []float64) int {
	n := min(len(src), len(dst))
	for i := range n {
		dst[i] = int(Quantize16(src[i]))
	}

	return n
}

// Normalize16 converts an int16 sample value to a float in [-1, 1).
func Normalize16(v int) float64 {
	return float64(v) / norm16
}

// NormalizeBitDepth converts an integer sample of the given bit depth to a
// float in [-1, 1). Unknown depths are treated as 16-bit.
func NormalizeBitDepth(v int, bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return float64(v) / 128.0
	case 24:
		return float64(v) / 8388608.0
	case 32:
		return float64(v) / 2147483648.0
	default:
		return Normalize16(v)
	}
}
