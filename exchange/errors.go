// SPDX-License-Identifier: EPL-2.0

package exchange

import "errors"

var (
	ErrBadBlockSize = errors.New("block size must be positive and even")
)
