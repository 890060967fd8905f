// Package playback sends the mixed audio stream to the host machine's sound
// device.
package playback

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
	"github.com/hardknott/shortbus/hardware/audio"
)

type Player struct {
	p *oto.Player
	r io.Reader
}

func (s *Player) Read(buf []uint8) (int, error) {
	return s.r.Read(buf)
}

// Create opens the sound device and starts playing the stream supplied by the
// reader. The reader is expected to produce signed 16bit little-endian mono
// samples at the audio package's sample frequency.
func Create(r io.Reader) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audio.SampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	<-ready

	s := &Player{
		r: r,
	}
	s.p = ctx.NewPlayer(s)
	s.p.Play()

	return s, nil
}

// Pause playback. The sound device remains open.
func (s *Player) Pause() {
	s.p.Pause()
}

// Resume playback after a Pause().
func (s *Player) Resume() {
	s.p.Play()
}
