package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/milk9111/swarm/arena"
	"github.com/milk9111/swarm/assets"
	"github.com/milk9111/swarm/config"
	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/obj"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render/ebitenrender"
	"github.com/milk9111/swarm/sound/ebitenaudio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "swarm",
		Short:         "Top-down arena shooter against a homing swarm",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(config.FromViper(v))
		},
	}
	cobra.CheckErr(config.BindFlags(cmd.Flags(), v))
	return cmd
}

func newLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(opts config.Options) (err error) {
	log := newLogger(opts.LogLevel)
	st := lifecycle.New("main", log)
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			log.Error().Err(err).Msg("swarm stopped")
		}
	}()

	prefabDir := opts.PrefabDir
	if prefabDir == "" {
		prefabDir = prefabs.DiskDir
	}
	disk := os.DirFS(prefabDir)

	specs, err := lifecycle.Step(st, "specs", lifecycle.KindAssetLoad, func() (*prefabs.Specs, error) {
		return prefabs.LoadAllFrom(disk)
	}, nil)
	if err != nil {
		return err
	}

	audio, err := lifecycle.Step(st, "audio", lifecycle.KindDeviceBind, func() (*ebitenaudio.Device, error) {
		return ebitenaudio.Open(ebitenaudio.DefaultSampleRate)
	}, (*ebitenaudio.Device).Close)
	if err != nil {
		return err
	}

	loader := assets.Dir(opts.AssetDir)
	deps := obj.Deps{
		Assets: loader,
		Render: ebitenrender.NewDevice(),
		Audio:  audio,
		Log:    log,
	}
	a, err := lifecycle.Step(st, "arena", lifecycle.KindAllocation, func() (*arena.Arena, error) {
		return arena.New(arena.Options{
			Width:   float64(opts.Width),
			Height:  float64(opts.Height),
			Enemies: opts.Enemies,
			Specs:   specs,
		}, deps)
	}, (*arena.Arena).Close)
	if err != nil {
		return err
	}

	game := NewGame(a, newEbitenInput(), log)
	game.debug = opts.Debug
	game.reload = func() (*prefabs.Specs, error) { return prefabs.LoadAllFrom(disk) }

	if opts.Watch {
		w, err := lifecycle.Step(st, "watcher", lifecycle.KindAllocation, func() (*prefabs.Watcher, error) {
			return prefabs.NewWatcher(prefabDir)
		}, (*prefabs.Watcher).Close)
		if err != nil {
			return err
		}
		game.changes = w
	}
	game.ui = NewPauseUI(game)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("swarm")
	ebiten.SetWindowClosingHandled(true)

	log.Info().Stringer("assets", loader).Str("prefabs", prefabDir).Msg("starting")
	return ebiten.RunGame(game)
}
