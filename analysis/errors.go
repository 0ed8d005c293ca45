// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var ErrInvalidChannels = errors.New("source has no channels")
