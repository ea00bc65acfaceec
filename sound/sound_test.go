package sound

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"mp3", "sounds/music/music.mp3", "mp3"},
		{"upper_wav", "fx/SHOOT.WAV", "wav"},
		{"ogg", "a.b/c.ogg", "ogg"},
		{"none", "sounds/readme", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Format(c.in))
		})
	}
}
