// SPDX-License-Identifier: EPL-2.0

package decimate

import "errors"

var (
	ErrInvalidTargetRate = errors.New("target sample rate must be positive")
	ErrInvalidSourceRate = errors.New("source sample rate must be positive")
	ErrUpsample          = errors.New("target sample rate exceeds source sample rate")
)
