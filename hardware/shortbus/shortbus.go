// Package shortbus implements the expansion bus found on the short edge of
// the IDE64 cartridge. Peripherals on the short bus claim a small window of
// addresses in the IO1 page and exchange register reads and writes with the
// host through that window.
//
// A peripheral describes its window with the Source type and attaches it to
// the bus with the Register() function. The bus itself does not decide when a
// peripheral should be attached. That is the responsibility of the expansion,
// which reacts to the Activate() and Deactivate() notifications that the bus
// fans out when the host cartridge is inserted or removed.
package shortbus

import (
	"fmt"
	"slices"

	"github.com/hardknott/shortbus/logger"
)

// DetachPolicy describes the reason a source would be removed from the bus.
type DetachPolicy int

// List of valid DetachPolicy values.
const (
	// the source is detached when the owning cartridge is detached
	DetachCartridge DetachPolicy = iota

	// the source is detached when the owning resource (the user facing
	// enable setting) is disabled
	DetachResource
)

// Source describes a window of addresses claimed by a peripheral, along with
// the handlers the bus should dispatch reads and writes to.
//
// Origin and Memtop are absolute addresses. The address forwarded to the
// Read and Write handlers is relative to Origin and limited by Mask.
type Source struct {
	Name   string
	Detach DetachPolicy

	Origin uint16
	Memtop uint16
	Mask   uint16

	// reads from this window always return valid data, even for registers
	// that have never been written
	ReadValid bool

	Write func(addr uint16, data uint8)
	Read  func(addr uint16) uint8

	// Dump returns a summary of the source's registers. it may be nil if the
	// source has nothing useful to show
	Dump func() string

	// the identity of the cartridge the source belongs to
	Cartridge string
}

// Handle represents a live registration on the bus. It is returned by
// Register() and accepted by Unregister(). It has no other use.
type Handle struct {
	src Source
}

// Expansion is any peripheral that can sit on the short bus. Activate and
// Deactivate are notifications of host cartridge presence, not commands. An
// expansion decides for itself whether to register a source in response.
type Expansion interface {
	Label() string
	Activate()
	Deactivate()
}

// Context defines the environment the bus operates in.
type Context interface {
	logger.Permission
}

// Bus is the short bus itself.
type Bus struct {
	ctx Context

	sources    []*Handle
	expansions []Expansion

	hostActive bool
}

// Create is the preferred method of initialisation for the Bus type.
func Create(ctx Context) *Bus {
	return &Bus{
		ctx: ctx,
	}
}

func (bus *Bus) Label() string {
	return "ShortBus"
}

// AddExpansion adds an expansion to the list of peripherals that receive
// host presence notifications.
func (bus *Bus) AddExpansion(exp Expansion) {
	bus.expansions = append(bus.expansions, exp)
	logger.Logf(bus.ctx, "shortbus", "expansion added: %s", exp.Label())
}

// Activate signals that the host cartridge is present and operating. The
// notification is forwarded to every expansion.
func (bus *Bus) Activate() {
	for _, exp := range bus.expansions {
		exp.Activate()
	}
	bus.hostActive = true
}

// Deactivate signals that the host cartridge has been removed. The
// notification is forwarded to every expansion.
func (bus *Bus) Deactivate() {
	for _, exp := range bus.expansions {
		exp.Deactivate()
	}
	bus.hostActive = false
}

// HostActive returns true if the host cartridge is present and operating.
func (bus *Bus) HostActive() bool {
	return bus.hostActive
}

// Register attaches a source to the bus. The returned handle is required to
// unregister the source later.
func (bus *Bus) Register(src Source) *Handle {
	h := &Handle{src: src}
	bus.sources = append(bus.sources, h)
	logger.Logf(bus.ctx, "shortbus", "%s registered at %#04x to %#04x", src.Name, src.Origin, src.Memtop)
	return h
}

// Unregister removes a previously registered source from the bus. An unknown
// handle is a no-op.
func (bus *Bus) Unregister(h *Handle) {
	i := slices.Index(bus.sources, h)
	if i < 0 {
		return
	}
	bus.sources = slices.Delete(bus.sources, i, i+1)
	logger.Logf(bus.ctx, "shortbus", "%s unregistered", h.src.Name)
}

// Access dispatches a read or write to the source whose window contains the
// address. The boolean return value indicates whether any source claimed the
// address.
func (bus *Bus) Access(write bool, address uint16, data uint8) (uint8, bool, error) {
	for _, h := range bus.sources {
		if address < h.src.Origin || address > h.src.Memtop {
			continue
		}

		local := (address - h.src.Origin) & h.src.Mask

		if write {
			if h.src.Write != nil {
				h.src.Write(local, data)
			}
			return 0, true, nil
		}

		if h.src.Read != nil {
			return h.src.Read(local), true, nil
		}

		// a source with no read handler that claims the address is
		// misconfigured rather than merely absent
		return 0, true, fmt.Errorf("shortbus: %s has no read handler", h.src.Name)
	}

	return 0, false, nil
}

// Dump returns the register summaries of every source that provides one.
func (bus *Bus) Dump() string {
	var s string
	for _, h := range bus.sources {
		if h.src.Dump != nil {
			s += fmt.Sprintf("%s: %s\n", h.src.Name, h.src.Dump())
		}
	}
	return s
}
