// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrUnknownKeys   = errors.New("unknown config keys")
	ErrInvalidValue  = errors.New("invalid config value")
)
