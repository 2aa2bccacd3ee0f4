package assets

import (
	"errors"
	"io/fs"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ErrNoTracks is returned when the sound directory holds nothing playable.
var ErrNoTracks = errors.New("no background tracks found")

// Track is an encoded audio file read into memory.
type Track struct {
	Name string
	Data []byte
}

// PickTrack reads one of the tracks in m, chosen at random.
func PickTrack(fsys fs.FS, m Manifest, rng *rand.Rand, log logrus.FieldLogger) (Track, error) {
	if len(m) == 0 {
		return Track{}, ErrNoTracks
	}
	name := m[rng.Intn(len(m))]
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Track{}, &LoadError{Path: name, Err: err}
	}
	log.WithField("track", name).Info("background track chosen")
	return Track{Name: name, Data: data}, nil
}
