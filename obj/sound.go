package obj

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/sound"
)

// Sound plays the looping music track and named one-shot effects.
type Sound struct {
	stack   *lifecycle.Stack
	log     zerolog.Logger
	music   sound.Track
	effects map[string]sound.Track
}

// NewSound loads the music and starts it, then loads every effect. Each
// file goes through read, decode and bind.
func NewSound(spec prefabs.SoundSpec, d Deps) (*Sound, error) {
	st := lifecycle.New("sound", d.Log)
	s := &Sound{
		stack:   st,
		log:     d.Log.With().Str("subsystem", "sound").Logger(),
		effects: make(map[string]sound.Track, len(spec.Effects)),
	}

	if spec.Music.File != "" {
		music, err := loadTrack(st, d, "music", spec.Music, true)
		if err != nil {
			return nil, err
		}
		err = st.Do("music:play", lifecycle.KindDeviceBind, func() (func() error, error) {
			music.Play()
			return func() error {
				music.Pause()
				return nil
			}, nil
		})
		if err != nil {
			return nil, err
		}
		s.music = music
	}

	for _, fx := range spec.Effects {
		t, err := loadTrack(st, d, "fx/"+fx.Name, fx, false)
		if err != nil {
			return nil, err
		}
		s.effects[fx.Name] = t
	}
	return s, nil
}

func loadTrack(st *lifecycle.Stack, d Deps, step string, a prefabs.AudioSpec, loop bool) (sound.Track, error) {
	data, err := lifecycle.Step(st, step+":read", lifecycle.KindAssetLoad, func() ([]byte, error) {
		return d.Assets.File(a.File)
	}, nil)
	if err != nil {
		return nil, err
	}

	stream, err := lifecycle.Step(st, step+":decode", lifecycle.KindAssetLoad, func() (sound.Stream, error) {
		return d.Audio.Decode(a.File, data)
	}, nil)
	if err != nil {
		return nil, err
	}

	t, err := lifecycle.Step(st, step+":bind", lifecycle.KindDeviceBind, func() (sound.Track, error) {
		return d.Audio.Bind(stream, loop)
	}, func(t sound.Track) error {
		return t.Close()
	})
	if err != nil {
		return nil, err
	}
	if a.Volume > 0 {
		t.SetVolume(a.Volume)
	}

	// the decoded stream and raw bytes now belong to the track
	_, _ = st.Release(step + ":decode")
	_, _ = st.Release(step + ":read")
	return t, nil
}

// Play restarts the named effect.
func (s *Sound) Play(name string) error {
	if s.stack.Closed() {
		return nil
	}
	t, ok := s.effects[name]
	if !ok {
		return fmt.Errorf("obj: unknown sound effect %q", name)
	}
	if err := t.Rewind(); err != nil {
		s.log.Warn().Err(err).Str("effect", name).Msg("rewind failed")
		return err
	}
	t.Play()
	return nil
}

// MusicPlaying reports whether the music track is running.
func (s *Sound) MusicPlaying() bool {
	return s.music != nil && !s.stack.Closed() && s.music.IsPlaying()
}

func (s *Sound) Close() error {
	return s.stack.Close()
}
