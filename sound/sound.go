// Package sound holds the audio contracts the game is written against.
// sound/ebitenaudio binds them to ebiten's audio context.
package sound

import (
	"errors"
	"io"
	"path"
	"strings"
)

var ErrUnsupportedFormat = errors.New("sound: unsupported format")

// Stream is decoded PCM ready to be bound to a device.
type Stream interface {
	io.ReadSeeker
	Length() int64
}

// Track is a stream bound to the audio device. *audio.Player satisfies it.
type Track interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// Device decodes audio files and binds the result for playback.
type Device interface {
	Decode(name string, data []byte) (Stream, error)
	Bind(s Stream, loop bool) (Track, error)
}

// Format returns the lower-case extension of name without the dot.
func Format(name string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}
