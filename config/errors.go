// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrBadSampleRate = errors.New("unsupported sample rate")
	ErrBadBlockSize  = errors.New("block size must be positive and even")
	ErrBadMIDIMode   = errors.New("unknown MIDI mode")
	ErrBadStatsDepth = errors.New("stats depth must be positive")
	ErrBadInterval   = errors.New("interval out of range")
)
