package memory_test

import (
	"testing"

	"github.com/hardknott/shortbus/hardware/memory"
	"github.com/hardknott/shortbus/test"
)

type context struct {
	floating uint8
}

func (ctx *context) Rand8Bit() uint8 {
	return ctx.floating
}

// iobus claims a single address in the IO page
type iobus struct {
	claimed uint16
	value   uint8
	writes  int
}

func (io *iobus) Label() string {
	return "test io"
}

func (io *iobus) Access(write bool, address uint16, data uint8) (uint8, bool, error) {
	if address != io.claimed {
		return 0, false, nil
	}
	if write {
		io.value = data
		io.writes++
		return 0, true, nil
	}
	return io.value, true, nil
}

func TestRAM(t *testing.T) {
	mem, addIO := memory.Create(&context{})
	addIO(&iobus{})

	test.ExpectSuccess(t, mem.Write(0x1000, 0xab))
	v, err := mem.Read(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xab))

	// clearing reset returns RAM to zero
	mem.Reset(false)
	v, err = mem.Read(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
}

func TestIOPage(t *testing.T) {
	io := &iobus{claimed: 0xde42}
	mem, addIO := memory.Create(&context{floating: 0xe7})
	addIO(io)

	// a claimed address in the IO page goes to the bus, not to RAM
	test.ExpectSuccess(t, mem.Write(0xde42, 0x12))
	test.ExpectEquality(t, io.value, uint8(0x12))
	v, err := mem.Read(0xde42)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	// an unclaimed read in the IO page returns the floating bus value
	v, err = mem.Read(0xde00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xe7))

	// an unclaimed write in the IO page is dropped
	test.ExpectSuccess(t, mem.Write(0xde00, 0x34))
	test.ExpectEquality(t, io.writes, 1)
}

func TestMapAddress(t *testing.T) {
	mem, addIO := memory.Create(&context{})
	addIO(&iobus{})

	// the IO page has no Area
	idx, area := mem.MapAddress(0xde40)
	test.ExpectEquality(t, idx, uint16(0x40))
	test.ExpectEquality(t, area, nil)

	// everything else is RAM
	_, area = mem.MapAddress(0x8000)
	test.ExpectInequality(t, area, nil)
	test.ExpectEquality(t, area.Label(), "ram")
}
