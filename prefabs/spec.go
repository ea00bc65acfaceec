package prefabs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// Spec file names.
const (
	PlayerFile = "player.yaml"
	EnemyFile  = "enemy.yaml"
	BulletFile = "bullet.yaml"
	FloorFile  = "floor.yaml"
	SoundFile  = "sound.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	return LoadSpecFrom[T](os.DirFS(DiskDir), filename)
}

func LoadSpecFrom[T any](disk fs.FS, filename string) (T, error) {
	var zero T
	data, err := LoadFrom(disk, filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes the player. Width and Height size the drawn sprite; zero
// means the texture's own size.
type PlayerSpec struct {
	Name         string  `yaml:"name"`
	Sprite       string  `yaml:"sprite"`
	Speed        float64 `yaml:"speed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FireCooldown float64 `yaml:"fire_cooldown"`
	RenderLayer  int     `yaml:"render_layer"`
}

func (s *PlayerSpec) Validate() error {
	var errs *multierror.Error
	if s.Sprite == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: player: sprite is required", ErrInvalidSpec))
	}
	if s.Speed < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: player: speed %v < 0", ErrInvalidSpec, s.Speed))
	}
	if s.Width < 0 || s.Height < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: player: negative size", ErrInvalidSpec))
	}
	if s.FireCooldown < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: player: fire_cooldown %v < 0", ErrInvalidSpec, s.FireCooldown))
	}
	return errs.ErrorOrNil()
}

// EnemySpec tunes every enemy. The sprite is a horizontal strip of Frames
// cells; the collider radius is ColliderScale times the smaller cell side.
type EnemySpec struct {
	Name           string  `yaml:"name"`
	Sprite         string  `yaml:"sprite"`
	Frames         int     `yaml:"frames"`
	AnimationSpeed float64 `yaml:"animation_speed"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	ColliderScale  float64 `yaml:"collider_scale"`
	Health         int     `yaml:"health"`
	RenderLayer    int     `yaml:"render_layer"`
}

func (s *EnemySpec) Validate() error {
	var errs *multierror.Error
	if s.Sprite == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: enemy: sprite is required", ErrInvalidSpec))
	}
	if s.Frames < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: enemy: frames %d < 1", ErrInvalidSpec, s.Frames))
	}
	if s.AnimationSpeed < 0 || s.WalkSpeed < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: enemy: negative speed", ErrInvalidSpec))
	}
	if s.ColliderScale <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: enemy: collider_scale %v <= 0", ErrInvalidSpec, s.ColliderScale))
	}
	if s.Health < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: enemy: health %d < 1", ErrInvalidSpec, s.Health))
	}
	return errs.ErrorOrNil()
}

// BulletSpec tunes projectiles. Capacity bounds how many can be live.
type BulletSpec struct {
	Name     string  `yaml:"name"`
	Sprite   string  `yaml:"sprite"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Damage   int     `yaml:"damage"`
	Capacity int     `yaml:"capacity"`
}

func (s *BulletSpec) Validate() error {
	var errs *multierror.Error
	if s.Sprite == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: bullet: sprite is required", ErrInvalidSpec))
	}
	if s.Speed <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: bullet: speed %v <= 0", ErrInvalidSpec, s.Speed))
	}
	if s.Radius <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: bullet: radius %v <= 0", ErrInvalidSpec, s.Radius))
	}
	if s.Capacity < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: bullet: capacity %d < 1", ErrInvalidSpec, s.Capacity))
	}
	return errs.ErrorOrNil()
}

type FloorSpec struct {
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
}

func (s *FloorSpec) Validate() error {
	if s.Sprite == "" {
		return fmt.Errorf("%w: floor: sprite is required", ErrInvalidSpec)
	}
	return nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// SoundSpec lists the looping music track and the named effects. An empty
// music file means no music.
type SoundSpec struct {
	Music   AudioSpec   `yaml:"music"`
	Effects []AudioSpec `yaml:"effects"`
}

func (s *SoundSpec) Validate() error {
	var errs *multierror.Error
	seen := make(map[string]bool, len(s.Effects))
	for _, fx := range s.Effects {
		if fx.Name == "" || fx.File == "" {
			errs = multierror.Append(errs, fmt.Errorf("%w: sound: effect needs name and file", ErrInvalidSpec))
			continue
		}
		if seen[fx.Name] {
			errs = multierror.Append(errs, fmt.Errorf("%w: sound: duplicate effect %q", ErrInvalidSpec, fx.Name))
		}
		seen[fx.Name] = true
	}
	return errs.ErrorOrNil()
}

// Specs is every tuning file the game reads.
type Specs struct {
	Player PlayerSpec
	Enemy  EnemySpec
	Bullet BulletSpec
	Floor  FloorSpec
	Sound  SoundSpec
}

// LoadAll reads every spec from DiskDir with embedded fallback.
func LoadAll() (*Specs, error) {
	return LoadAllFrom(os.DirFS(DiskDir))
}

// LoadAllFrom reads and validates every spec, reporting all problems at
// once.
func LoadAllFrom(disk fs.FS) (*Specs, error) {
	var (
		s    Specs
		errs *multierror.Error
		err  error
	)
	if s.Player, err = LoadSpecFrom[PlayerSpec](disk, PlayerFile); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := s.Player.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if s.Enemy, err = LoadSpecFrom[EnemySpec](disk, EnemyFile); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := s.Enemy.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if s.Bullet, err = LoadSpecFrom[BulletSpec](disk, BulletFile); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := s.Bullet.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if s.Floor, err = LoadSpecFrom[FloorSpec](disk, FloorFile); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := s.Floor.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if s.Sound, err = LoadSpecFrom[SoundSpec](disk, SoundFile); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := s.Sound.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &s, nil
}
