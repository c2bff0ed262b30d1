// SPDX-License-Identifier: EPL-2.0

package codec

import "fmt"

// RegisterBus writes one codec register. Register numbers are 7 bits,
// values 9 bits.
type RegisterBus interface {
	WriteReg(reg uint8, value uint16) error
}

// I2CWriter is the slice of an I2C master the codec needs.
type I2CWriter interface {
	Write(addr uint8, data []byte) (int, error)
}

// DefaultI2CAddress is the WM8960's fixed bus address.
const DefaultI2CAddress = 0x1A

// I2CBus adapts an I2C master to RegisterBus using the WM8960's
// two-byte register encoding.
type I2CBus struct {
	w    I2CWriter
	addr uint8
}

// NewI2CBus wraps w addressing the codec at addr; addr 0 selects
// DefaultI2CAddress.
func NewI2CBus(w I2CWriter, addr uint8) *I2CBus {
	if addr == 0 {
		addr = DefaultI2CAddress
	}
	return &I2CBus{w: w, addr: addr}
}

func (b *I2CBus) WriteReg(reg uint8, value uint16) error {
	cmd := []byte{byte(reg<<1) | byte(value>>8), byte(value)}
	n, err := b.w.Write(b.addr, cmd)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if n != len(cmd) {
		return ErrShortWrite
	}
	return nil
}

// Jack identifies a codec input or output path.
type Jack int

const (
	JackDefaultOut Jack = iota
	JackHeadphone
	JackSpeaker
	JackLineOut
	JackDefaultIn
	JackLineIn
	JackMicrophone
)

// IsInput reports whether the jack is an input path.
func (j Jack) IsInput() bool {
	switch j {
	case JackDefaultIn, JackLineIn, JackMicrophone:
		return true
	}
	return false
}

// Channel selects which side of a stereo pair a control applies to.
type Channel int

const (
	ChannelAll Channel = iota
	ChannelLeft
	ChannelRight
)

// Volume ranges in dB, from the datasheet's PGA and output driver
// ranges.
const (
	InVolumeMinDB  = -17
	InVolumeMaxDB  = 30
	OutVolumeMinDB = -73
	OutVolumeMaxDB = 6
)

// Controller drives one WM8960 over a register bus.
type Controller struct {
	bus        RegisterBus
	sampleRate int

	// Cached input PGA volume registers (left, right); mute bit 0x80,
	// level in the low 6 bits.
	inVolume [2]uint8
}

// New creates a controller for a codec clocked at sampleRate. Probe
// must run before any control operation takes effect.
func New(bus RegisterBus, sampleRate int) *Controller {
	return &Controller{
		bus:        bus,
		sampleRate: sampleRate,
		inVolume:   [2]uint8{0x17, 0x17}, // 0 dB
	}
}

type regWrite struct {
	reg   uint8
	value uint16
}

// Probe runs the codec's static initialization sequence. It fails on
// the first register the bus rejects, or immediately when the sample
// rate has no PLL configuration.
func (c *Controller) Probe() error {
	var pll []regWrite
	switch c.sampleRate {
	case 44100:
		pll = []regWrite{
			{4, 0x005},  // Clocking (1): PLL selected
			{52, 0x037}, // PLL N
			{53, 0x086}, // PLL K [23:16]
			{54, 0x0C2}, // PLL K [15:8]
			{55, 0x026}, // PLL K [7:0]
		}
	case 48000:
		pll = []regWrite{
			{4, 0x005},
			{52, 0x038},
			{53, 0x031},
			{54, 0x026},
			{55, 0x0E8},
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedSampleRate, c.sampleRate)
	}

	seq := []regWrite{
		{15, 0x000}, // software reset
		{25, 0x1FC}, // power: VREF, ADC L/R, input PGAs
		{26, 0x1F9}, // power: DAC L/R, output drivers
		{47, 0x03C}, // power: input and output mixers
	}
	seq = append(seq, pll...)
	seq = append(seq,
		regWrite{5, 0x000},  // ADC/DAC control: no mute, no HPF
		regWrite{7, 0x00A},  // audio interface: I2S, slave mode
		regWrite{20, 0x0F9}, // noise gate threshold
		regWrite{2, 0x179},  // headphone left 0 dB, volume update
		regWrite{3, 0x179},  // headphone right 0 dB
		regWrite{40, 0x179}, // speaker left 0 dB
		regWrite{41, 0x179}, // speaker right 0 dB
		regWrite{51, 0x08D}, // class D boost
		regWrite{0, 0x100 | uint16(c.inVolume[0])}, // input PGA left
		regWrite{1, 0x100 | uint16(c.inVolume[1])}, // input PGA right
		regWrite{32, 0x000}, // ADCL path: PGA disconnected, line input only
		regWrite{33, 0x000}, // ADCR path
		regWrite{43, 0x010}, // boost mixer: LINPUT3 at -12 dB
		regWrite{44, 0x010}, // boost mixer: RINPUT3 at -12 dB
		regWrite{49, 0x0F7}, // class D: both speakers enabled
		regWrite{34, 0x100}, // left DAC to left output mixer
		regWrite{37, 0x100}, // right DAC to right output mixer
	)

	for _, w := range seq {
		if err := c.bus.WriteReg(w.reg, w.value); err != nil {
			return fmt.Errorf("probe: reg %d: %w", w.reg, err)
		}
	}

	return nil
}

// ControlInfo reports the supported dB range of the volume control on
// a jack. ok is false when the jack has no volume control.
func (c *Controller) ControlInfo(jack Jack) (minDB, maxDB int, ok bool) {
	if jack.IsInput() {
		return InVolumeMinDB, InVolumeMaxDB, true
	}
	return OutVolumeMinDB, OutVolumeMaxDB, true
}

// SetVolume sets the volume of a jack in dB. An out-of-range value is
// rejected with ErrVolumeOutOfRange; it is never clamped.
func (c *Controller) SetVolume(jack Jack, channel Channel, dB int) error {
	if jack.IsInput() {
		if dB < InVolumeMinDB || dB > InVolumeMaxDB {
			return fmt.Errorf("%w: %d dB not in [%d, %d]", ErrVolumeOutOfRange, dB, InVolumeMinDB, InVolumeMaxDB)
		}

		level := uint8((dB - InVolumeMinDB) * 100 / 75)
		if channel == ChannelLeft || channel == ChannelAll {
			c.inVolume[0] = c.inVolume[0]&0x80 | level
			if err := c.bus.WriteReg(0, 0x100|uint16(c.inVolume[0])); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
		if channel == ChannelRight || channel == ChannelAll {
			c.inVolume[1] = c.inVolume[1]&0x80 | level
			if err := c.bus.WriteReg(1, 0x100|uint16(c.inVolume[1])); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
		return nil
	}

	if dB < OutVolumeMinDB || dB > OutVolumeMaxDB {
		return fmt.Errorf("%w: %d dB not in [%d, %d]", ErrVolumeOutOfRange, dB, OutVolumeMinDB, OutVolumeMaxDB)
	}

	level := uint16(dB - OutVolumeMinDB + 0x30)
	regLeft := uint8(2) // headphone pair
	if jack == JackSpeaker {
		regLeft = 40
	}

	if channel == ChannelLeft || channel == ChannelAll {
		if err := c.bus.WriteReg(regLeft, 0x100|level); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if channel == ChannelRight || channel == ChannelAll {
		if err := c.bus.WriteReg(regLeft+1, 0x100|level); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// SetMute mutes or unmutes an input jack's PGA. Output jacks have no
// mute control on this codec.
func (c *Controller) SetMute(jack Jack, channel Channel, mute bool) error {
	if !jack.IsInput() {
		return fmt.Errorf("%w: mute", ErrUnsupportedControl)
	}

	var bit uint8
	if mute {
		bit = 0x80
	}

	if channel == ChannelLeft || channel == ChannelAll {
		c.inVolume[0] = c.inVolume[0]&0x3F | bit
		if err := c.bus.WriteReg(0, 0x100|uint16(c.inVolume[0])); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if channel == ChannelRight || channel == ChannelAll {
		c.inVolume[1] = c.inVolume[1]&0x3F | bit
		if err := c.bus.WriteReg(1, 0x100|uint16(c.inVolume[1])); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// SetALC switches the automatic level control on the input PGAs. The
// ALC hardware controls both channels from the left volume register,
// so enabling it first copies the left level to the right.
func (c *Controller) SetALC(on bool) error {
	if on {
		c.inVolume[1] = c.inVolume[0]
		if err := c.bus.WriteReg(1, 0x100|uint16(c.inVolume[1])); err != nil {
			return fmt.Errorf("%w", err)
		}
		if err := c.bus.WriteReg(17, 0x1FB); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	if err := c.bus.WriteReg(17, 0x00B); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// EnableJack powers a switchable jack on. Only the speaker path is
// switchable; the headphone output cannot be disabled.
func (c *Controller) EnableJack(jack Jack) error {
	if jack != JackSpeaker {
		return nil
	}
	if err := c.bus.WriteReg(49, 0x0F7); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DisableJack powers a switchable jack off.
func (c *Controller) DisableJack(jack Jack) error {
	if jack != JackSpeaker {
		return fmt.Errorf("%w: disable", ErrUnsupportedControl)
	}
	if err := c.bus.WriteReg(49, 0x037); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
