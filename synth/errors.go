// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter      = errors.New("invalid parameter")
	ErrZeroBlock             = errors.New("sound and silence durations are both zero")
	ErrChannelLengthMismatch = errors.New("channel length mismatch")
	ErrTooLong               = errors.New("output exceeds the WAV size limit")
)

// InvalidParameterError reports a request field rejected by validation.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s %s=%v: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ChannelLengthMismatchError is returned when left and right sample
// sequences cannot be paired frame by frame.
type ChannelLengthMismatchError struct {
	Left  int
	Right int
}

func (e *ChannelLengthMismatchError) Error() string {
	return fmt.Sprintf("%s: left has %d samples, right has %d", ErrChannelLengthMismatch, e.Left, e.Right)
}

func (e *ChannelLengthMismatchError) Is(target error) bool {
	return target == ErrChannelLengthMismatch
}
