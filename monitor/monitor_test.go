package monitor_test

import (
	"errors"
	"testing"

	"github.com/hardknott/shortbus/hardware/digimax"
	"github.com/hardknott/shortbus/monitor"
	"github.com/hardknott/shortbus/test"
)

func TestLaunchBadBaseAddress(t *testing.T) {
	// a bad base address must fail the launch even though a switch visited
	// after it succeeds
	err := monitor.Launch([]string{"-digimaxbase", "0x9999", "-nodigimax"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, digimax.InvalidAddress))
}
