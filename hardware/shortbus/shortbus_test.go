package shortbus_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hardknott/shortbus/hardware/shortbus"
	"github.com/hardknott/shortbus/test"
)

type context struct{}

func (ctx *context) AllowLogging() bool {
	return false
}

func (ctx *context) Rand8Bit() uint8 {
	return 0
}

// expansion records the notifications it receives
type expansion struct {
	activations   int
	deactivations int
}

func (exp *expansion) Label() string {
	return "test expansion"
}

func (exp *expansion) Activate() {
	exp.activations++
}

func (exp *expansion) Deactivate() {
	exp.deactivations++
}

func TestDispatch(t *testing.T) {
	bus := shortbus.Create(&context{})

	var regs [4]uint8

	h := bus.Register(shortbus.Source{
		Name:      "test source",
		Origin:    0xde40,
		Memtop:    0xde43,
		Mask:      0x03,
		ReadValid: true,
		Write: func(addr uint16, data uint8) {
			regs[addr] = data
		},
		Read: func(addr uint16) uint8 {
			return regs[addr]
		},
		Dump: func() string {
			return fmt.Sprintf("% 02x", regs)
		},
	})

	// write lands in the register selected by the low bits of the address
	_, ok, err := bus.Access(true, 0xde42, 0x99)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, regs[2], uint8(0x99))

	v, ok, err := bus.Access(false, 0xde42, 0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x99))

	// addresses outside the window are not claimed
	_, ok, err = bus.Access(false, 0xde44, 0)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	// the register summary reflects the write
	test.ExpectSuccess(t, strings.Contains(bus.Dump(), "99"))

	// and nothing is claimed once the source is unregistered
	bus.Unregister(h)
	_, ok, err = bus.Access(false, 0xde42, 0)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	// unregistering twice is a no-op
	bus.Unregister(h)
}

func TestNotifications(t *testing.T) {
	bus := shortbus.Create(&context{})

	exp := &expansion{}
	bus.AddExpansion(exp)

	test.ExpectEquality(t, bus.HostActive(), false)

	bus.Activate()
	test.ExpectEquality(t, bus.HostActive(), true)
	test.ExpectEquality(t, exp.activations, 1)

	bus.Deactivate()
	test.ExpectEquality(t, bus.HostActive(), false)
	test.ExpectEquality(t, exp.deactivations, 1)
}
