// SPDX-License-Identifier: EPL-2.0

package stats

import "errors"

var (
	ErrBadSampleRate = errors.New("sample rate must be positive")
	ErrBadDepth      = errors.New("history depth must be positive")
)
