// Package monitor provides the interactive front end. Memory can be peeked
// and poked, the host cartridge inserted and removed, and the DigiMAX
// expansion enabled, disabled and relocated, all from a simple command loop.
package monitor

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hardknott/shortbus/hardware"
	"github.com/hardknott/shortbus/hardware/audio"
	"github.com/hardknott/shortbus/hardware/digimax"
	"github.com/hardknott/shortbus/logger"
	"github.com/hardknott/shortbus/playback"
	"github.com/hardknott/shortbus/version"
)

type input struct {
	s   string
	err error
}

type monitor struct {
	ctx context

	sig   chan os.Signal
	input chan input

	console *hardware.Console

	// printing styles
	styles styles
}

func (m *monitor) parseAddress(s string) (uint16, error) {
	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("not an address: %s", s)
	}
	return uint16(a), nil
}

func (m *monitor) parseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("not an 8bit value: %s", s)
	}
	return uint8(v), nil
}

func (m *monitor) digimaxCommand(cmd []string) {
	dm := m.console.DigiMax

	if len(cmd) == 0 {
		fmt.Println(m.styles.expansion.Render(dm.Status()))
		return
	}

	switch strings.ToUpper(cmd[0]) {
	case "ON":
		if err := m.console.Prefs.Enabled.Set(true); err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
		}
	case "OFF":
		if err := m.console.Prefs.Enabled.Set(false); err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
		}
	case "BASE":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("DIGIMAX BASE requires an address %s", digimax.AddressList()),
			))
			return
		}
		a, err := m.parseAddress(cmd[1])
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			return
		}
		if err := m.console.Prefs.Base.Set(int(a)); err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			return
		}
	default:
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("unrecognised DIGIMAX command: %s", strings.Join(cmd, " ")),
		))
		return
	}

	fmt.Println(m.styles.expansion.Render(dm.Status()))
}

func (m *monitor) loop() {
	for {
		fmt.Print("> ")

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				fmt.Println(m.styles.err.Render(input.err.Error()))
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				continue // for loop
			}
		case <-m.sig:
			fmt.Print("\r")
			return
		}

		switch strings.ToUpper(cmd[0]) {
		case "PEEK":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"PEEK requires an address",
				))
				break // switch
			}

			a, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek: %s", err.Error()),
				))
				break // switch
			}

			data, err := m.console.Mem.Read(a)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek: %s", err.Error()),
				))
				break // switch
			}

			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("$%04x = %02x", a, data),
			))
		case "POKE":
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render(
					"POKE requires an address and a value",
				))
				break // switch
			}

			a, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}

			v, err := m.parseValue(cmd[2])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}

			err = m.console.Mem.Write(a, v)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}

			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("$%04x <- %02x", a, v),
			))
		case "DIGIMAX":
			m.digimaxCommand(cmd[1:])
		case "HOST":
			if len(cmd) < 2 {
				fmt.Println(m.styles.monitor.Render(
					fmt.Sprintf("host active: %v", m.console.Bus.HostActive()),
				))
				break // switch
			}
			switch strings.ToUpper(cmd[1]) {
			case "ON":
				m.console.AttachHost()
				fmt.Println(m.styles.monitor.Render("host cartridge attached"))
			case "OFF":
				m.console.DetachHost()
				fmt.Println(m.styles.monitor.Render("host cartridge detached"))
			default:
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("unrecognised HOST command: %s", cmd[1]),
				))
			}
		case "DUMP":
			s := m.console.Bus.Dump()
			if len(s) == 0 {
				fmt.Println(m.styles.monitor.Render("nothing on the bus"))
				break // switch
			}
			fmt.Print(m.styles.mem.Render(s))
			fmt.Println()
		case "RESET":
			m.ctx.Reset()
			m.console.Reset(true)
			fmt.Println(m.styles.monitor.Render("console reset"))
		case "LOG":
			logger.Tail(os.Stdout, -1)
		case "QUIT":
			return
		default:
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
			))
		}
	}
}

// prefetch keeps the audio buffer topped up while the sound device drains it.
// the monitor has no emulation clock so samples are generated on a timer.
func (m *monitor) prefetch(buf *audio.Buffer, done chan bool) {
	const interval = 10 * time.Millisecond
	samples := audio.SampleFreq * int(interval) / int(time.Second)

	tck := time.NewTicker(interval)
	defer tck.Stop()

	for {
		select {
		case <-tck.C:
			buf.Prefetch(samples)
		case <-done:
			return
		}
	}
}

func Launch(args []string) error {
	var useDigimax bool
	var noDigimax bool
	var baseAddr string
	var useAudio bool

	flgs := flag.NewFlagSet(version.ApplicationName, flag.ExitOnError)
	flgs.BoolVar(&useDigimax, "digimax", false, "enable the DigiMAX expansion at launch")
	flgs.BoolVar(&noDigimax, "nodigimax", false, "disable the DigiMAX expansion at launch")
	flgs.StringVar(&baseAddr, "digimaxbase", "",
		fmt.Sprintf("base address of the DigiMAX register window %s", digimax.AddressList()))
	flgs.BoolVar(&useAudio, "audio", false, "play the mixed audio stream on the sound device")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments to monitor")
	}

	m := &monitor{
		sig:    make(chan os.Signal, 1),
		input:  make(chan input, 1),
		styles: newStyles(),
	}
	m.ctx.Reset()

	m.console, err = hardware.Create(&m.ctx)
	if err != nil {
		return err
	}

	// command line switches override the loaded preferences, but only the
	// switches actually given. Visit() walks flags in lexical order so
	// -nodigimax takes precedence over -digimax if both are present
	flgs.Visit(func(f *flag.Flag) {
		// a failure from an earlier switch must not be overwritten
		if err != nil {
			return
		}
		switch f.Name {
		case "digimax":
			err = m.console.Prefs.Enabled.Set(useDigimax)
		case "nodigimax":
			if noDigimax {
				err = m.console.Prefs.Enabled.Set(false)
			}
		case "digimaxbase":
			var a uint16
			a, err = m.parseAddress(baseAddr)
			if err == nil {
				err = m.console.Prefs.Base.Set(int(a))
			}
		}
	})
	if err != nil {
		return err
	}

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	if useAudio {
		// the player and the prefetch goroutine must share the one buffer
		buf := m.console.Audio.Buffer()
		_, err := playback.Create(buf)
		if err != nil {
			return err
		}
		done := make(chan bool)
		defer close(done)
		go m.prefetch(buf, done)
	}

	// the session begins with the host cartridge in place
	m.console.AttachHost()

	fmt.Println(m.styles.monitor.Render(version.Title()))
	m.loop()

	return m.console.End()
}
