// Package config resolves process options from flags and SWARM_* environment
// variables. Bad numeric values never fail; they fall back to defaults.
package config

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	MinDimension   = 240
	DefaultEnemies = 20
	MinEnemies     = 1
	MaxEnemies     = 200

	EnvPrefix = "SWARM"
)

// Option keys, shared by flags and environment variables.
const (
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyEnemies  = "enemies"
	KeyAssets   = "assets"
	KeyPrefabs  = "prefabs"
	KeyDebug    = "debug"
	KeyWatch    = "watch"
	KeyLogLevel = "log-level"
)

type Options struct {
	Width     int
	Height    int
	Enemies   int
	AssetDir  string
	PrefabDir string
	Debug     bool
	Watch     bool
	LogLevel  zerolog.Level
}

// Raw holds options as typed on the command line.
type Raw struct {
	Width    string
	Height   string
	Enemies  string
	Assets   string
	Prefabs  string
	LogLevel string
	Debug    bool
	Watch    bool
}

func Default() Options {
	return Options{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Enemies:  DefaultEnemies,
		LogLevel: zerolog.InfoLevel,
	}
}

func Resolve(r Raw) Options {
	return Options{
		Width:     ParseDimension(r.Width, DefaultWidth),
		Height:    ParseDimension(r.Height, DefaultHeight),
		Enemies:   ParseEnemies(r.Enemies),
		AssetDir:  strings.TrimSpace(r.Assets),
		PrefabDir: strings.TrimSpace(r.Prefabs),
		Debug:     r.Debug,
		Watch:     r.Watch,
		LogLevel:  ParseLevel(r.LogLevel),
	}
}

// ParseDimension accepts decimal, hex (0x) or octal (0) sizes of at least
// MinDimension.
func ParseDimension(s string, fallback int) int {
	n, ok := parseCount(s)
	if !ok || n < MinDimension {
		return fallback
	}
	return n
}

// ParseEnemies accepts counts in [MinEnemies, MaxEnemies].
func ParseEnemies(s string) int {
	n, ok := parseCount(s)
	if !ok || n < MinEnemies || n > MaxEnemies {
		return DefaultEnemies
	}
	return n
}

func parseCount(s string) (int, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return int(n), true
}

// ParseLevel returns info for anything zerolog does not know.
func ParseLevel(s string) zerolog.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// BindFlags defines the game's flags on fs and binds them, together with
// SWARM_<KEY> environment variables, into v. An explicit flag beats the
// environment, which beats the flag default.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(KeyWidth, strconv.Itoa(DefaultWidth), "window width in pixels (min 240)")
	fs.String(KeyHeight, strconv.Itoa(DefaultHeight), "window height in pixels (min 240)")
	fs.String(KeyEnemies, strconv.Itoa(DefaultEnemies), "number of enemies (1-200)")
	fs.String(KeyAssets, "", "asset directory; empty uses the embedded assets")
	fs.String(KeyPrefabs, "", "prefab directory overriding the embedded specs")
	fs.Bool(KeyDebug, false, "show the debug HUD")
	fs.Bool(KeyWatch, false, "reload prefab tuning when files change")
	fs.String(KeyLogLevel, "info", "log level (trace, debug, info, warn, error)")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(fs)
}

// FromViper resolves the options bound by BindFlags.
func FromViper(v *viper.Viper) Options {
	return Resolve(Raw{
		Width:    v.GetString(KeyWidth),
		Height:   v.GetString(KeyHeight),
		Enemies:  v.GetString(KeyEnemies),
		Assets:   v.GetString(KeyAssets),
		Prefabs:  v.GetString(KeyPrefabs),
		LogLevel: v.GetString(KeyLogLevel),
		Debug:    v.GetBool(KeyDebug),
		Watch:    v.GetBool(KeyWatch),
	})
}
