// Package ebitenaudio binds the sound contracts to ebiten's audio context.
package ebitenaudio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/swarm/sound"
)

const DefaultSampleRate = 44100

// Device wraps the process-wide audio context. It remembers the players it
// bound so Close can release any a caller leaked.
type Device struct {
	ctx     *audio.Context
	players []*audio.Player
}

// Open returns a device on the existing audio context or creates one.
// ebiten only allows one context per process and panics on a second, so a
// context at a different sample rate is reported as an error.
func Open(sampleRate int) (d *Device, err error) {
	if ctx := audio.CurrentContext(); ctx != nil {
		if ctx.SampleRate() != sampleRate {
			return nil, fmt.Errorf("ebitenaudio: context already open at %d Hz", ctx.SampleRate())
		}
		return &Device{ctx: ctx}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, fmt.Errorf("ebitenaudio: open context: %v", r)
		}
	}()
	return &Device{ctx: audio.NewContext(sampleRate)}, nil
}

func (d *Device) SampleRate() int {
	return d.ctx.SampleRate()
}

func (d *Device) Decode(name string, data []byte) (sound.Stream, error) {
	r := bytes.NewReader(data)
	rate := d.ctx.SampleRate()
	var (
		s   sound.Stream
		err error
	)
	switch sound.Format(name) {
	case "wav":
		s, err = wav.DecodeWithSampleRate(rate, r)
	case "mp3":
		s, err = mp3.DecodeWithSampleRate(rate, r)
	case "ogg":
		s, err = vorbis.DecodeWithSampleRate(rate, r)
	default:
		return nil, fmt.Errorf("ebitenaudio: decode %s: %w", name, sound.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("ebitenaudio: decode %s: %w", name, err)
	}
	return s, nil
}

// Bind creates a player for s. Looping tracks restart at the end of the
// stream.
func (d *Device) Bind(s sound.Stream, loop bool) (sound.Track, error) {
	var src io.Reader = s
	if loop {
		src = audio.NewInfiniteLoop(s, s.Length())
	}
	p, err := d.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("ebitenaudio: bind: %w", err)
	}
	d.players = append(d.players, p)
	return p, nil
}

// Close closes every player bound through d. Closing an already closed
// player is harmless.
func (d *Device) Close() error {
	for _, p := range d.players {
		p.Pause()
		_ = p.Close()
	}
	d.players = nil
	return nil
}
