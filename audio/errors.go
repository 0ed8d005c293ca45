// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("unknown audio format")
)

// UnknownFormatError reports a format key with no registered decoder.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}
