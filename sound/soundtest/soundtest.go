// Package soundtest provides an in-memory audio device for tests.
package soundtest

import (
	"bytes"

	"github.com/milk9111/swarm/sound"
)

type Stream struct {
	*bytes.Reader
	Name string
}

func (s *Stream) Length() int64 { return s.Size() }

// Track records playback calls.
type Track struct {
	Stream  *Stream
	Loop    bool
	Playing bool
	Volume  float64
	Plays   int
	Rewinds int
	Closed  int
}

func (t *Track) Play() { t.Playing = true; t.Plays++ }
func (t *Track) Pause() { t.Playing = false }
func (t *Track) Rewind() error { t.Rewinds++; return nil }
func (t *Track) SetVolume(v float64) { t.Volume = v }
func (t *Track) IsPlaying() bool { return t.Playing }
func (t *Track) Close() error { t.Playing = false; t.Closed++; return nil }

// Device fails Decode for names in DecodeErr and Bind once BindErr is set.
type Device struct {
	DecodeErr map[string]error
	BindErr   error
	Decoded   []string
	Tracks    []*Track
}

func (d *Device) Decode(name string, data []byte) (sound.Stream, error) {
	if err := d.DecodeErr[name]; err != nil {
		return nil, err
	}
	d.Decoded = append(d.Decoded, name)
	return &Stream{Reader: bytes.NewReader(data), Name: name}, nil
}

func (d *Device) Bind(s sound.Stream, loop bool) (sound.Track, error) {
	if d.BindErr != nil {
		return nil, d.BindErr
	}
	st, _ := s.(*Stream)
	t := &Track{Stream: st, Loop: loop}
	d.Tracks = append(d.Tracks, t)
	return t, nil
}

// Open returns how many bound tracks were never closed.
func (d *Device) Open() int {
	n := 0
	for _, t := range d.Tracks {
		if t.Closed == 0 {
			n++
		}
	}
	return n
}
