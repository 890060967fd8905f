// Package hardware assembles the emulated host: main memory, the short bus
// in the IO1 page, the audio subsystem and the expansions that sit on the
// bus.
package hardware

import (
	"fmt"

	"github.com/hardknott/shortbus/hardware/audio"
	"github.com/hardknott/shortbus/hardware/digimax"
	"github.com/hardknott/shortbus/hardware/memory"
	"github.com/hardknott/shortbus/hardware/shortbus"
	"github.com/hardknott/shortbus/logger"
)

type Context interface {
	logger.Permission
	Rand8Bit() uint8
}

type Console struct {
	Mem   *memory.Memory
	Bus   *shortbus.Bus
	Audio *audio.Audio

	DigiMax *digimax.DigiMax
	Prefs   *digimax.Preferences
}

// Create is the preferred method of initialisation for the Console type.
// Expansion preferences are loaded from disk as part of creation; the host
// cartridge starts out absent.
func Create(ctx Context) (*Console, error) {
	var con Console
	var addIO memory.AddIO

	con.Mem, addIO = memory.Create(ctx)
	con.Bus = shortbus.Create(ctx)
	addIO(con.Bus)

	con.Audio = audio.NewAudio()

	chip, err := con.Audio.RegisterChip("digimax", 4)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}
	con.DigiMax = digimax.Create(ctx, con.Bus, chip)
	con.Bus.AddExpansion(con.DigiMax)

	con.Prefs, err = digimax.NewPreferences(con.DigiMax)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}
	if err := con.Prefs.Load(); err != nil {
		// a problem with the preferences file is not fatal. the defaults
		// remain in force
		logger.Log(ctx, "hardware", err)
	}

	con.Reset(true)

	return &con, nil
}

// AttachHost signals that the host cartridge carrying the short bus is
// present and operating.
func (con *Console) AttachHost() {
	con.Bus.Activate()
}

// DetachHost signals that the host cartridge has been removed. Expansions
// detach themselves from the bus in response.
func (con *Console) DetachHost() {
	con.Bus.Deactivate()
}

func (con *Console) Reset(random bool) {
	con.Mem.Reset(random)
	con.DigiMax.Reset()
}

// End the session. The host is detached, which removes any register windows
// from the bus, and current preferences are saved.
func (con *Console) End() error {
	con.DetachHost()
	return con.Prefs.Save()
}
