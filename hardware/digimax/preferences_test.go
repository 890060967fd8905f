package digimax_test

import (
	"testing"

	"github.com/hardknott/shortbus/hardware/digimax"
	"github.com/hardknott/shortbus/test"
)

func TestPreferencesBinding(t *testing.T) {
	h := createHarness(t)

	p, err := digimax.NewPreferences(h.dm)
	test.DemandEquality(t, err, nil)

	// the enable setting drives the expansion
	h.bus.Activate()
	test.ExpectSuccess(t, p.Enabled.Set(true))
	test.ExpectEquality(t, h.dm.Registered(), true)
	test.ExpectSuccess(t, p.Enabled.Set(false))
	test.ExpectEquality(t, h.dm.Registered(), false)
}

func TestPreferencesBaseRejection(t *testing.T) {
	h := createHarness(t)

	p, err := digimax.NewPreferences(h.dm)
	test.DemandEquality(t, err, nil)

	test.ExpectEquality(t, p.Base.Get(), int(digimax.BaseA))

	// a rejected address is not committed to the preference and the
	// expansion is untouched
	test.ExpectFailure(t, p.Base.Set(0x1000))
	test.ExpectEquality(t, p.Base.Get(), int(digimax.BaseA))
	test.ExpectEquality(t, h.dm.BaseAddress(), digimax.BaseA)

	// values that cannot fit in the address space are also rejected
	test.ExpectFailure(t, p.Base.Set(-1))
	test.ExpectFailure(t, p.Base.Set(0x10000))

	// a legal address is committed and relocates the window
	test.ExpectSuccess(t, p.Base.Set(int(digimax.BaseB)))
	test.ExpectEquality(t, p.Base.Get(), int(digimax.BaseB))
	test.ExpectEquality(t, h.dm.BaseAddress(), digimax.BaseB)
}
