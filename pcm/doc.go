// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between normalized float samples and integer PCM.
//
// Encoding uses round-to-nearest with clamping, so values outside [-1, 1]
// saturate instead of wrapping:
//
//	pcm.Quantize16(0.5)  // 16384
//	pcm.Quantize16(1.5)  // 32767
//	pcm.Quantize16(-1.0) // -32767
//
// Decoding divides by 2^(bits-1) so the full negative range maps to -1.0.
package pcm
