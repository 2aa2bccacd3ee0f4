package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"memorypuzzle/internal/assets"
	"memorypuzzle/internal/board"
	"memorypuzzle/internal/config"
	"memorypuzzle/internal/gamemode"
	"memorypuzzle/internal/music"
	"memorypuzzle/internal/render"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log := newLogger(cfg.Debug)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("memory puzzle stopped")
	}
}

func newLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// seedFrom returns seed, or a time based seed when it is zero.
func seedFrom(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func run(cfg config.Config, log *logrus.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	seed := seedFrom(cfg.Seed)
	log.WithField("seed", seed).Debug("random source ready")
	rng := rand.New(rand.NewSource(seed))

	// 1. Icons
	iconFS := os.DirFS(cfg.AssetDir)
	manifest, err := assets.ScanDir(iconFS, assets.IconExtensions)
	if err != nil {
		return fmt.Errorf("scan icons in %s: %w", cfg.AssetDir, err)
	}
	if len(manifest) < cfg.Pairs() {
		return fmt.Errorf("%w: %s has %d icons, need %d", board.ErrPoolExhausted, cfg.AssetDir, len(manifest), cfg.Pairs())
	}
	icons, err := assets.LoadIcons(iconFS, manifest, cfg.BoxSize, log.WithField("dir", cfg.AssetDir))
	if err != nil {
		return err
	}

	ctrl, err := gamemode.NewController(cfg, len(icons), rng, log)
	if err != nil {
		return err
	}

	// 2. Music
	if !cfg.Mute {
		p, err := startMusic(cfg.SoundDir, rng, log)
		if err != nil {
			return err
		}
		defer p.Close()
	}

	// 3. Window
	layout := ctrl.Layout()
	w, h := layout.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(cfg.FPS)

	// 4. Run Loop
	game := NewGame(ctrl, render.New(layout, cfg.Palette, render.NewIconSet(icons)), w, h)
	return ebiten.RunGame(game)
}

func startMusic(dir string, rng *rand.Rand, log *logrus.Logger) (*music.Player, error) {
	soundFS := os.DirFS(dir)
	tracks, err := assets.ScanDir(soundFS, assets.TrackExtensions)
	if err != nil {
		return nil, fmt.Errorf("scan tracks in %s: %w", dir, err)
	}
	tr, err := assets.PickTrack(soundFS, tracks, rng, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return music.Play(audio.NewContext(music.SampleRate), tr)
}
