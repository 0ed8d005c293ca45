// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Samples are interleaved float64 values in [-1, 1]. Any channel count the
// stream declares is passed through, so ReadSamples wants a buffer that
// holds whole frames.
package vorbis
