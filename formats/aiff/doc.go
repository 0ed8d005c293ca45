// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is accepted and normalized to
// float64 in [-1, 1). go-audio needs to seek, so readers that cannot are
// buffered in memory first.
//
// Errors:
//   - ErrNotAiffFile: missing FORM/AIFF header or COMM chunk
//   - ErrUnsupportedBitDepth: any other sample size
//   - ErrUnsupportedAiffLayout: no usable channel layout
package aiff
