// SPDX-License-Identifier: EPL-2.0

// Package config holds the configuration surface of the audio core:
// MIDI ingestion mode, sample rate, block length, statistics history
// depth and the housekeeping cadence. Configurations come from code or
// from a TOML file:
//
//	sample_rate = 48000
//	block_size = 256
//	midi_mode = "serial"
//	poll_interval = "10ms"
//
// Validation is strict: an unsupported sample rate or a malformed
// option is reported to the caller, never silently adjusted.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// MIDIMode selects which ingestion paths are active.
type MIDIMode int

const (
	MIDINone MIDIMode = iota
	MIDISerial
	MIDIUSBHost
	MIDIUSBGadget
	MIDIAll
)

func (m MIDIMode) String() string {
	switch m {
	case MIDINone:
		return "none"
	case MIDISerial:
		return "serial"
	case MIDIUSBHost:
		return "usbhost"
	case MIDIUSBGadget:
		return "usbgadget"
	case MIDIAll:
		return "all"
	}
	return "unknown"
}

// UsesByteStream reports whether the mode includes a byte-oriented
// source (serial UART or the USB gadget endpoint).
func (m MIDIMode) UsesByteStream() bool {
	return m == MIDISerial || m == MIDIUSBGadget || m == MIDIAll
}

// UsesPort reports whether the mode includes the packet-oriented USB
// host source.
func (m MIDIMode) UsesPort() bool {
	return m == MIDIUSBHost || m == MIDIAll
}

// MarshalText implements encoding.TextMarshaler for TOML round trips.
func (m MIDIMode) MarshalText() ([]byte, error) {
	if m < MIDINone || m > MIDIAll {
		return nil, fmt.Errorf("%w: %d", ErrBadMIDIMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MIDIMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*m = MIDINone
	case "serial":
		*m = MIDISerial
	case "usbhost":
		*m = MIDIUSBHost
	case "usbgadget":
		*m = MIDIUSBGadget
	case "all":
		*m = MIDIAll
	default:
		return fmt.Errorf("%w: %q", ErrBadMIDIMode, text)
	}
	return nil
}

// Duration wraps time.Duration with the textual TOML form ("10ms").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	*d = Duration(parsed)
	return nil
}

// SampleRates lists the rates the codec can be clocked at.
var SampleRates = []int{44100, 48000}

// Config is the full option surface. The zero value is not valid;
// start from Default.
type Config struct {
	// SampleRate in Hz; one of SampleRates.
	SampleRate int `toml:"sample_rate"`

	// BlockSize is the interleaved block length in samples, negotiated
	// once at startup. Must be positive and even.
	BlockSize int `toml:"block_size"`

	// MIDIMode selects the active ingestion paths.
	MIDIMode MIDIMode `toml:"midi_mode"`

	// PortMatch is the case-insensitive substring a USB MIDI port name
	// must contain; empty binds the first port seen.
	PortMatch string `toml:"port_match"`

	// StatsDepth is the timing-sample history capacity.
	StatsDepth int `toml:"stats_depth"`

	// PollInterval is the housekeeping cadence: MIDI polling and
	// topology checks run once per interval.
	PollInterval Duration `toml:"poll_interval"`

	// ReportInterval is how often accumulated statistics are logged.
	// Zero disables reporting.
	ReportInterval Duration `toml:"report_interval"`
}

// Default returns the configuration the reference hardware runs with.
func Default() Config {
	return Config{
		SampleRate:     48000,
		BlockSize:      256,
		MIDIMode:       MIDIUSBHost,
		StatsDepth:     1000,
		PollInterval:   Duration(10 * time.Millisecond),
		ReportInterval: Duration(10 * time.Second),
	}
}

// Validate checks every option, reporting the first violation.
func (c Config) Validate() error {
	ok := false
	for _, rate := range SampleRates {
		if c.SampleRate == rate {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrBadSampleRate, c.SampleRate)
	}

	if c.BlockSize <= 0 || c.BlockSize%2 != 0 {
		return fmt.Errorf("%w: %d", ErrBadBlockSize, c.BlockSize)
	}
	if c.MIDIMode < MIDINone || c.MIDIMode > MIDIAll {
		return fmt.Errorf("%w: %d", ErrBadMIDIMode, int(c.MIDIMode))
	}
	if c.StatsDepth <= 0 {
		return fmt.Errorf("%w: %d", ErrBadStatsDepth, c.StatsDepth)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: %v", ErrBadInterval, time.Duration(c.PollInterval))
	}
	if c.ReportInterval < 0 {
		return fmt.Errorf("%w: %v", ErrBadInterval, time.Duration(c.ReportInterval))
	}

	return nil
}

// Load reads a TOML configuration from r on top of Default and
// validates the result.
func Load(r io.Reader) (Config, error) {
	c := Default()

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("%w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
