package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
)

// Original puzzle constants.
const (
	DefaultFPS         = 30
	DefaultRevealSpeed = 8  // pixels per frame the cover slides
	DefaultBoxSize     = 48 // box height and width in pixels
	DefaultGapSize     = 10 // gap between boxes in pixels
	DefaultBoardWidth  = 6  // columns
	DefaultBoardHeight = 5  // rows
	DefaultMargin      = 20 // extra window padding, both sides combined

	WindowTitle = "Your Emoji Puzzle Game"
)

// Palette
var (
	Gray     = color.RGBA{100, 100, 100, 0xff}
	NavyBlue = color.RGBA{60, 60, 100, 0xff}
	White    = color.RGBA{255, 255, 255, 0xff}
	Blue     = color.RGBA{0, 0, 255, 0xff}
)

// Palette groups the colours the render pass needs.
type Palette struct {
	Background      color.RGBA
	LightBackground color.RGBA
	Box             color.RGBA
	Highlight       color.RGBA
}

// Config holds everything the game reads at startup.
type Config struct {
	FPS         int
	RevealSpeed int
	BoxSize     int
	GapSize     int
	BoardWidth  int
	BoardHeight int
	Margin      int

	Palette Palette

	AssetDir string
	SoundDir string
	Mute     bool
	Debug    bool
	Seed     int64
}

// Default returns the configuration of the original game.
func Default() Config {
	return Config{
		FPS:         DefaultFPS,
		RevealSpeed: DefaultRevealSpeed,
		BoxSize:     DefaultBoxSize,
		GapSize:     DefaultGapSize,
		BoardWidth:  DefaultBoardWidth,
		BoardHeight: DefaultBoardHeight,
		Margin:      DefaultMargin,
		Palette: Palette{
			Background:      NavyBlue,
			LightBackground: Gray,
			Box:             White,
			Highlight:       Blue,
		},
		AssetDir: "assets",
		SoundDir: "sound",
	}
}

// RegisterFlags binds the runtime options to fs. Board geometry is not exposed.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "directory of icon images")
	fs.StringVar(&c.SoundDir, "sound", c.SoundDir, "directory of background tracks (.ogg, .wav)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable background music")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
}

// Pairs is the number of distinct icons on a board.
func (c Config) Pairs() int {
	return c.BoardWidth * c.BoardHeight / 2
}

var ErrInvalid = errors.New("invalid config")

// Validate reports the first constraint the config breaks.
func (c Config) Validate() error {
	switch {
	case c.BoardWidth <= 0 || c.BoardHeight <= 0:
		return fmt.Errorf("%w: board %dx%d must be positive", ErrInvalid, c.BoardWidth, c.BoardHeight)
	case (c.BoardWidth*c.BoardHeight)%2 != 0:
		return fmt.Errorf("%w: board %dx%d needs an even number of boxes for pairs", ErrInvalid, c.BoardWidth, c.BoardHeight)
	case c.BoxSize <= 0 || c.GapSize < 0:
		return fmt.Errorf("%w: box size %d, gap size %d", ErrInvalid, c.BoxSize, c.GapSize)
	case c.RevealSpeed <= 0 || c.BoxSize%c.RevealSpeed != 0:
		return fmt.Errorf("%w: box size %d is not a multiple of reveal speed %d", ErrInvalid, c.BoxSize, c.RevealSpeed)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	}
	return nil
}
