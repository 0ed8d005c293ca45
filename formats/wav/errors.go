// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	ErrUnsupportedChannels   = errors.New("unsupported channel count")
)

// EncodingError is returned when a WAV file cannot be written. Path is the
// destination the caller asked for, Op the step that failed.
type EncodingError struct {
	Path string
	Op   string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("wav: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("wav: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
