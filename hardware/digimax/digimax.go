package digimax

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hardknott/shortbus/hardware/shortbus"
	"github.com/hardknott/shortbus/logger"
)

// The two legal base addresses for the DigiMAX register window.
const (
	BaseA = uint16(0xde40)
	BaseB = uint16(0xde48)
)

// the register window is one register per channel
const (
	numChannels = 4
	addressMask = 0x03
)

// InvalidAddress is returned by SetBaseAddress() when the requested address
// is not one of the legal window origins.
var InvalidAddress = errors.New("invalid base address")

// Registrar is the surface of the short bus used by the DigiMAX. The full
// bus implementation satisfies this interface.
type Registrar interface {
	Register(src shortbus.Source) *shortbus.Handle
	Unregister(h *shortbus.Handle)
}

// SoundChip is the handle to the audio subsystem obtained at registration
// time. The offset token keeps this peripheral's channels distinct from
// other chips sharing the mixing engine.
type SoundChip interface {
	Offset() uint16
	Store(key uint16, data uint8)
	Read(key uint16) uint8
	SetEnabled(enabled bool)
}

// Context defines the environment the DigiMAX operates in.
type Context interface {
	logger.Permission
}

// DigiMax is the DigiMAX DAC expansion. It implements the shortbus.Expansion
// interface.
type DigiMax struct {
	ctx  Context
	bus  Registrar
	chip SoundChip

	// the host cartridge is present and operating
	hostActive bool

	// the user facing enable state of the expansion. whether the register
	// window is actually on the bus depends on hostActive too
	enabled bool

	base uint16

	// non-nil when the register window is attached to the bus
	handle *shortbus.Handle
}

// Create is the preferred method of initialisation for the DigiMax type. The
// expansion starts out disabled, with the host absent, at the default base
// address.
func Create(ctx Context, bus Registrar, chip SoundChip) *DigiMax {
	return &DigiMax{
		ctx:  ctx,
		bus:  bus,
		chip: chip,
		base: BaseA,
	}
}

func (dm *DigiMax) Label() string {
	return "DigiMAX"
}

// source builds the bus descriptor for the current base address.
func (dm *DigiMax) source() shortbus.Source {
	return shortbus.Source{
		Name:      "ShortBus DigiMAX",
		Detach:    shortbus.DetachResource,
		Origin:    dm.base,
		Memtop:    dm.base + numChannels - 1,
		Mask:      addressMask,
		ReadValid: true,
		Write:     dm.write,
		Read:      dm.read,
		Cartridge: "IDE64",
	}
}

// attach the register window to the bus. a no-op if already attached.
func (dm *DigiMax) attach() {
	if dm.handle != nil {
		return
	}
	dm.handle = dm.bus.Register(dm.source())
	dm.chip.SetEnabled(true)
	logger.Logf(dm.ctx, "digimax", "attached at %#04x", dm.base)
}

// detach the register window from the bus. a no-op if not attached.
func (dm *DigiMax) detach() {
	if dm.handle == nil {
		return
	}
	dm.bus.Unregister(dm.handle)
	dm.handle = nil
	dm.chip.SetEnabled(false)
	logger.Log(dm.ctx, "digimax", "detached")
}

// Activate signals that the host cartridge is present and operating. If the
// expansion was enabled while the host was absent, the register window is
// attached now.
func (dm *DigiMax) Activate() {
	if dm.enabled {
		dm.attach()
	}
	dm.hostActive = true
}

// Deactivate signals that the host cartridge has been removed. The register
// window is detached if it was attached. The enable state is unaffected but
// has no effect on the bus until the host returns.
func (dm *DigiMax) Deactivate() {
	dm.detach()
	dm.hostActive = false
}

// SetEnabled changes the user facing enable state of the expansion. The
// register window is attached or detached to match, but only while the host
// is present; without the host the new state simply waits for the next
// Activate().
func (dm *DigiMax) SetEnabled(enabled bool) {
	if dm.hostActive {
		if enabled {
			dm.attach()
		} else {
			dm.detach()
		}
	}
	dm.enabled = enabled
}

// SetBaseAddress relocates the register window. Only BaseA and BaseB are
// accepted; any other address returns InvalidAddress and changes nothing.
//
// If the window is currently on the bus it is detached before the address
// changes and reattached after. The bus never sees a window that straddles
// the old and new addresses. The enable state is not consulted or modified;
// relocation is not an enable/disable event.
func (dm *DigiMax) SetBaseAddress(address uint16) error {
	if address == dm.base {
		return nil
	}

	switch address {
	case BaseA, BaseB:
	default:
		return fmt.Errorf("digimax: %w: %#04x", InvalidAddress, address)
	}

	attached := dm.handle != nil
	if attached {
		dm.detach()
	}
	dm.base = address
	if attached {
		dm.attach()
	}

	logger.Logf(dm.ctx, "digimax", "base address %#04x", dm.base)

	return nil
}

// Reset the expansion. The DAC has no state distinct from the audio
// subsystem so there is nothing to do.
func (dm *DigiMax) Reset() {
}

// BaseAddress returns the current origin of the register window.
func (dm *DigiMax) BaseAddress() uint16 {
	return dm.base
}

// Enabled returns the user facing enable state, regardless of host presence.
func (dm *DigiMax) Enabled() bool {
	return dm.enabled
}

// HostActive returns true if the host cartridge is present and operating.
func (dm *DigiMax) HostActive() bool {
	return dm.hostActive
}

// Registered returns true if the register window is currently on the bus.
func (dm *DigiMax) Registered() bool {
	return dm.handle != nil
}

func (dm *DigiMax) Status() string {
	return fmt.Sprintf("%s: enabled=%v host=%v base=%#04x attached=%v",
		dm.Label(), dm.enabled, dm.hostActive, dm.base, dm.Registered())
}

// write stores the sample value for the channel selected by the address and
// forwards it to the audio subsystem.
func (dm *DigiMax) write(addr uint16, data uint8) {
	dm.chip.Store(dm.chip.Offset()|addr, data)
}

// read returns the audio subsystem's current value for the channel selected
// by the address.
func (dm *DigiMax) read(addr uint16) uint8 {
	return dm.chip.Read(dm.chip.Offset() | addr)
}

// AddressList returns the legal base addresses in a form suitable for
// command line help text. The list is generated once.
var AddressList = sync.OnceValue(func() string {
	s := []string{
		fmt.Sprintf("%#04x", BaseA),
		fmt.Sprintf("%#04x", BaseB),
	}
	return fmt.Sprintf("(%s)", strings.Join(s, " or "))
})
