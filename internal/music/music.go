// Package music loops one background track for the whole session.
package music

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"memorypuzzle/internal/assets"
)

const SampleRate = 44100

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Player owns the looping audio player.
type Player struct {
	player *audio.Player
}

// Play decodes tr and starts looping it forever.
func Play(ctx *audio.Context, tr assets.Track) (*Player, error) {
	s, err := decode(ctx.SampleRate(), tr)
	if err != nil {
		return nil, &assets.LoadError{Path: tr.Name, Err: err}
	}
	p, err := ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	p.Play()
	return &Player{player: p}, nil
}

func decode(sampleRate int, tr assets.Track) (stream, error) {
	r := bytes.NewReader(tr.Data)
	switch ext := strings.ToLower(path.Ext(tr.Name)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported track format %q", ext)
	}
}

// Close stops playback.
func (p *Player) Close() error {
	return p.player.Close()
}
