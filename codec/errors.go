// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrUnsupportedSampleRate = errors.New("no PLL configuration for sample rate")
	ErrVolumeOutOfRange      = errors.New("volume out of range")
	ErrUnsupportedControl    = errors.New("control not supported on this jack")
	ErrShortWrite            = errors.New("short register write")
)
