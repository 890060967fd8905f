package digimax

import (
	"fmt"

	"github.com/hardknott/shortbus/prefs"
)

// the file the preferences are saved to, relative to the resources path
const prefsFile = "digimax.prefs"

// Preferences binds the persisted DigiMAX settings to a DigiMax instance.
//
// Setting Enabled drives SetEnabled() on the instance. Setting Base drives
// SetBaseAddress(); a base address the instance rejects is not committed to
// the preference, so the effective value never changes on failure.
type Preferences struct {
	dsk *prefs.Disk

	Enabled prefs.Bool
	Base    prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences(dm *DigiMax) (*Preferences, error) {
	p := &Preferences{
		dsk: prefs.NewDisk(prefsFile),
	}

	p.Enabled.SetHook(func(value bool) error {
		dm.SetEnabled(value)
		return nil
	})

	p.Base.SetHook(func(value int) error {
		if value < 0 || value > 0xffff {
			return fmt.Errorf("digimax: %w: %#x", InvalidAddress, value)
		}
		return dm.SetBaseAddress(uint16(value))
	})

	// default base address. the hook runs but the instance is already at the
	// default so nothing changes on the bus
	if err := p.Base.Set(int(BaseA)); err != nil {
		return nil, err
	}

	if err := p.dsk.Add("digimax", &p.Enabled); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("digimaxbase", &p.Base); err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
