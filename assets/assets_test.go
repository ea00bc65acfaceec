package assets

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/render/rendertest"
)

func TestEmbeddedDefaults(t *testing.T) {
	l := Embedded()
	cases := []struct {
		path string
		w, h int
	}{
		{"sprites/player.png", 54, 32},
		{"sprites/enemy.png", 128, 32},
		{"sprites/floortile.png", 32, 32},
		{"sprites/bullet.png", 8, 8},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			img, err := l.Image(c.path)
			require.NoError(t, err)
			require.Equal(t, c.w, img.Bounds().Dx())
			require.Equal(t, c.h, img.Bounds().Dy())
		})
	}

	for _, p := range []string{"sounds/music/music.wav", "sounds/effects/shoot.wav"} {
		b, err := l.File(p)
		require.NoError(t, err)
		require.Equal(t, "RIFF", string(b[:4]))
	}
}

func TestLoaderErrors(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"sprites/ok.png":     {Data: rendertest.PNG(1, 1)},
		"sprites/broken.png": {Data: []byte("not a png")},
	}, "test")

	img, err := l.Image("assets/sprites/ok.png")
	require.NoError(t, err)
	require.Equal(t, 1, img.Bounds().Dx())

	_, err = l.Image("sprites/missing.png")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = l.Image("sprites/broken.png")
	require.ErrorContains(t, err, "assets: decode sprites/broken.png")

	_, err = l.File("../escape.png")
	require.ErrorIs(t, err, fs.ErrInvalid)

	_, err = l.File("")
	require.ErrorIs(t, err, fs.ErrInvalid)
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sprites/enemy.png", "sprites/enemy.png"},
		{"assets/sprites/enemy.png", "sprites/enemy.png"},
		{"/opt/swarm/assets/sprites/enemy.png", "sprites/enemy.png"},
		{"/tmp/enemy.png", "enemy.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			require.Equal(t, c.want, cleanAssetPath(c.in))
		})
	}
}
