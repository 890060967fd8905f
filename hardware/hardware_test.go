package hardware_test

import (
	"testing"

	"github.com/hardknott/shortbus/hardware"
	"github.com/hardknott/shortbus/hardware/digimax"
	"github.com/hardknott/shortbus/test"
)

type context struct{}

func (ctx *context) AllowLogging() bool {
	return false
}

func (ctx *context) Rand8Bit() uint8 {
	return 0
}

// drive the DigiMAX through the console's memory map, the way an emulated
// program would
func TestConsole(t *testing.T) {
	con, err := hardware.Create(&context{})
	test.DemandEquality(t, err, nil)

	con.AttachHost()
	con.DigiMax.SetEnabled(true)
	test.ExpectEquality(t, con.DigiMax.Registered(), true)

	test.ExpectSuccess(t, con.Mem.Write(0xde40, 0x80))
	test.ExpectSuccess(t, con.Mem.Write(0xde43, 0xff))

	v, err := con.Mem.Read(0xde40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x80))
	v, err = con.Mem.Read(0xde43)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))

	// relocation through the memory map. the old window falls off the bus
	// and writes to it no longer reach the DAC
	test.ExpectSuccess(t, con.DigiMax.SetBaseAddress(digimax.BaseB))
	test.ExpectSuccess(t, con.Mem.Write(0xde40, 0x11))
	v, err = con.Mem.Read(0xde48)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x80))

	// removing the host takes the window with it
	con.DetachHost()
	test.ExpectEquality(t, con.DigiMax.Registered(), false)
	test.ExpectEquality(t, con.DigiMax.Enabled(), true)
}

func TestConsoleAudio(t *testing.T) {
	con, err := hardware.Create(&context{})
	test.DemandEquality(t, err, nil)

	con.AttachHost()
	con.DigiMax.SetEnabled(true)

	// the DAC idles at the midpoint so a write of 0x80 contributes nothing
	test.ExpectSuccess(t, con.Mem.Write(0xde40, 0x80))
	buf := con.Audio.Buffer()
	buf.Prefetch(2)
	b := make([]uint8, 4)
	n, err := buf.Read(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, b[0], uint8(0))
	test.ExpectEquality(t, b[1], uint8(0))

	// full deflection is audible
	test.ExpectSuccess(t, con.Mem.Write(0xde40, 0xff))
	buf.Prefetch(1)
	n, err = buf.Read(b[:2])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectInequality(t, uint16(b[0])|uint16(b[1])<<8, uint16(0))
}
