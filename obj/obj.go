// Package obj holds the game's lifecycled subsystems. Each one acquires its
// resources as ordered steps on a lifecycle.Stack, so a failure part way
// through gives back exactly what was taken.
package obj

import (
	"image"

	"github.com/rs/zerolog"

	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/render"
	"github.com/milk9111/swarm/sound"
)

// Assets reads asset files. *assets.Loader satisfies it.
type Assets interface {
	File(path string) ([]byte, error)
	Image(path string) (image.Image, error)
}

// Deps are the collaborators every subsystem draws on.
type Deps struct {
	Assets Assets
	Render render.Device
	Audio  sound.Device
	Log    zerolog.Logger
}

// loadTexture runs decode, texture and query for one sprite. The decoded
// image is dropped as soon as the texture holds its pixels.
func loadTexture(st *lifecycle.Stack, d Deps, path string) (render.Texture, error) {
	img, err := lifecycle.Step(st, "surface", lifecycle.KindAssetLoad, func() (image.Image, error) {
		return d.Assets.Image(path)
	}, nil)
	if err != nil {
		return nil, err
	}

	tex, err := lifecycle.Step(st, "texture", lifecycle.KindDeviceBind, func() (render.Texture, error) {
		return d.Render.NewTexture(img)
	}, func(t render.Texture) error {
		t.Dispose()
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = st.Do("query", lifecycle.KindDeviceBind, func() (func() error, error) {
		_, _, err := render.Query(tex)
		return nil, err
	})
	if err != nil {
		return nil, err
	}

	_, _ = st.Release("surface")
	return tex, nil
}
