// Package prefs implements the disk-backed settings used by the emulation.
//
// A preference value is either a Bool or an Int. A setter hook can be
// attached to a value; the hook runs before the new value is committed and
// can reject it, in which case the preference keeps its previous value and
// the error is returned to the caller.
//
// The Disk type gathers preference values together and persists them to a
// single file under the resources path.
package prefs

import (
	"fmt"
	"strconv"
)

// entry is implemented by every preference value type that can be added to a
// Disk instance.
type entry interface {
	fmt.Stringer
	fromString(string) error
}

// Bool is a boolean preference value.
type Bool struct {
	value bool
	hook  func(value bool) error
}

// Set the preference value. If a hook has been registered and it returns an
// error then the value is not committed.
func (p *Bool) Set(value bool) error {
	if p.hook != nil {
		if err := p.hook(value); err != nil {
			return err
		}
	}
	p.value = value
	return nil
}

// Get the current preference value.
func (p *Bool) Get() bool {
	return p.value
}

// SetHook registers the function to run before a new value is committed.
func (p *Bool) SetHook(hook func(value bool) error) {
	p.hook = hook
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value)
}

func (p *Bool) fromString(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return p.Set(v)
}

// Int is an integer preference value.
type Int struct {
	value int
	hook  func(value int) error
}

// Set the preference value. If a hook has been registered and it returns an
// error then the value is not committed.
func (p *Int) Set(value int) error {
	if p.hook != nil {
		if err := p.hook(value); err != nil {
			return err
		}
	}
	p.value = value
	return nil
}

// Get the current preference value.
func (p *Int) Get() int {
	return p.value
}

// SetHook registers the function to run before a new value is committed.
func (p *Int) SetHook(hook func(value int) error) {
	p.hook = hook
}

func (p *Int) String() string {
	return strconv.Itoa(p.value)
}

func (p *Int) fromString(s string) error {
	// base of zero so that values can be stored and edited in hex if preferred
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return p.Set(int(v))
}
