// SPDX-License-Identifier: EPL-2.0

package binaural

import (
	"fmt"

	"github.com/ik5/binaural/synth"
)

// ErrNoFileName is returned by Generate when the request has no output path.
var ErrNoFileName = fmt.Errorf("%w: file_name must not be empty", synth.ErrInvalidParameter)
