// Package audio implements the sound subsystem that expansion peripherals
// feed their sample data into. Peripherals do not produce audio directly.
// Instead each peripheral registers a chip with the subsystem and receives a
// handle in return. The handle carries an offset token and a small register
// store; the peripheral keys every store and read with the offset ORed with
// the local register address, which keeps the registers of different chips
// distinct even though they share the one mixing engine.
package audio

import (
	"fmt"

	"github.com/hardknott/shortbus/hardware/audio/mix"
)

// The rate at which the combined output of all chips is sampled.
const SampleFreq = 44100

// every chip is allotted a window of this many register addresses. offset
// tokens are assigned in multiples of the window size so that offset|addr is
// unique across chips for any local address within the window
const chipWindow = 0x20

// the DAC idle level. registers hold this value until they are written so
// that an untouched channel sits at the centre of the waveform rather than
// dragging the mix to one extreme
const idleLevel = 0x80

// Audio is the sound subsystem. It holds every registered chip and mixes
// their output into a single signed 16-bit stream.
type Audio struct {
	chips  []*Chip
	buffer *Buffer
}

// NewAudio is the preferred method of initialisation for the Audio subsystem.
func NewAudio() *Audio {
	return &Audio{}
}

// Chip is the handle returned by RegisterChip(). All communication between a
// peripheral and the subsystem happens through this handle.
type Chip struct {
	label   string
	offset  uint16
	store   []uint8
	enabled bool
}

// RegisterChip allocates a register store of the requested size and returns
// the chip handle. Registration is expected to happen once per peripheral,
// before the emulation starts.
func (au *Audio) RegisterChip(label string, numRegisters int) (*Chip, error) {
	if numRegisters < 1 || numRegisters > chipWindow {
		return nil, fmt.Errorf("audio: unsupported number of registers for %s: %d", label, numRegisters)
	}

	c := &Chip{
		label:  label,
		offset: uint16((len(au.chips) + 1) * chipWindow),
		store:  make([]uint8, numRegisters),
	}
	for i := range c.store {
		c.store[i] = idleLevel
	}
	au.chips = append(au.chips, c)

	return c, nil
}

func (c *Chip) Label() string {
	return c.label
}

// Offset returns the token that distinguishes this chip's registers from
// those of other chips. Keys passed to Store() and Read() are formed by ORing
// the offset with the local register address.
func (c *Chip) Offset() uint16 {
	return c.offset
}

// SetEnabled controls whether the chip contributes to the mixed output.
func (c *Chip) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *Chip) Enabled() bool {
	return c.enabled
}

// Store the sample value in the register selected by the key. Keys outside
// the chip's register store are ignored.
func (c *Chip) Store(key uint16, data uint8) {
	idx := key & (chipWindow - 1)
	if int(idx) >= len(c.store) {
		return
	}
	c.store[idx] = data
}

// Read the current value of the register selected by the key. Reads are
// always valid, even for registers that have never been written.
func (c *Chip) Read(key uint16) uint8 {
	idx := key & (chipWindow - 1)
	if int(idx) >= len(c.store) {
		return 0
	}
	return c.store[idx]
}

// sample returns the next value of the combined output of every enabled
// chip. register values are unsigned 8-bit samples. they are centred before
// summing and scaled into 16-bit range, with soft clipping on the result
func (au *Audio) sample() int16 {
	var sum int32
	for _, c := range au.chips {
		if !c.enabled {
			continue
		}
		for _, v := range c.store {
			sum += (int32(v) - idleLevel) << 6
		}
	}
	return mix.Clip(sum)
}
