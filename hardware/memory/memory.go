package memory

import (
	"fmt"

	"github.com/hardknott/shortbus/hardware/memory/ram"
)

// The IO1 page. Addresses in this range are offered to the expansion bus
// before anything else.
const (
	OriginIO = uint16(0xde00)
	MemtopIO = uint16(0xdeff)
)

// Area is an addressable region of memory.
type Area interface {
	// read and write both take an index value. this is an address in the area
	// but with the area origin removed. in other words, the area doesn't need
	// to know about it's location in memory, only the relative placement of
	// addresses within the area
	Read(idx uint16) (uint8, error)
	Write(idx uint16, data uint8) error
	Label() string
}

// IOBus is the expansion bus dispatcher for the IO1 page. The boolean return
// value of Access() indicates whether any device claimed the address.
type IOBus interface {
	Access(write bool, address uint16, data uint8) (uint8, bool, error)
	Label() string
}

type Context interface {
	ram.Context
}

type Memory struct {
	ctx Context

	RAM *ram.RAM
	IO  IOBus

	Last Area
}

// AddIO is returned by the Create() function and should be called to
// finalise the memory creation process
type AddIO func(io IOBus)

func Create(ctx Context) (*Memory, AddIO) {
	mem := &Memory{
		ctx: ctx,
		RAM: ram.Create(ctx, "ram", 0x10000),
	}
	return mem, func(io IOBus) {
		mem.IO = io
	}
}

func (mem *Memory) Reset(random bool) {
	mem.RAM.Reset(random)
}

// MapAddress returns the memory area and the index into the area
// corresponding to the address. Addresses in the IO1 page are handled by the
// IO bus and return a nil Area.
func (mem *Memory) MapAddress(address uint16) (uint16, Area) {
	if address >= OriginIO && address <= MemtopIO {
		return address - OriginIO, nil
	}
	return address, mem.RAM
}

func (mem *Memory) Read(address uint16) (uint8, error) {
	if address >= OriginIO && address <= MemtopIO {
		v, ok, err := mem.IO.Access(false, address, 0)
		if err != nil {
			return 0, fmt.Errorf("read %04x: %w", address, err)
		}
		if ok {
			return v, nil
		}

		// nothing claimed the address. the data bus floats
		return mem.ctx.Rand8Bit(), nil
	}

	idx, area := mem.MapAddress(address)
	v, err := area.Read(idx)
	if err != nil {
		return 0, fmt.Errorf("read %04x: %w", address, err)
	}
	return v, nil
}

func (mem *Memory) Write(address uint16, data uint8) error {
	if address >= OriginIO && address <= MemtopIO {
		_, _, err := mem.IO.Access(true, address, data)
		if err != nil {
			return fmt.Errorf("write %04x: %w", address, err)
		}

		// unclaimed writes to the IO page are dropped silently, as they
		// would be by the real hardware
		return nil
	}

	idx, area := mem.MapAddress(address)
	mem.Last = area
	err := area.Write(idx, data)
	if err != nil {
		return fmt.Errorf("write %04x: %w", address, err)
	}
	return nil
}
