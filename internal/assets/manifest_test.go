package assets

import (
	"slices"
	"testing"
	"testing/fstest"
)

func TestScanDir(t *testing.T) {
	fsys := fstest.MapFS{
		"b.png":         {Data: []byte("x")},
		"a.PNG":         {Data: []byte("x")},
		"c.webp":        {Data: []byte("x")},
		"notes.txt":     {Data: []byte("x")},
		".hidden.png":   {Data: []byte("x")},
		"sub/inner.png": {Data: []byte("x")},
		"theme.ogg":     {Data: []byte("x")},
		"chime.wav":     {Data: []byte("x")},
		"ambient.mp3":   {Data: []byte("x")},
	}

	icons, err := ScanDir(fsys, IconExtensions)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if want := (Manifest{"a.PNG", "b.png", "c.webp"}); !slices.Equal(icons, want) {
		t.Errorf("icons = %v, want %v", icons, want)
	}

	tracks, err := ScanDir(fsys, TrackExtensions)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if want := (Manifest{"chime.wav", "theme.ogg"}); !slices.Equal(tracks, want) {
		t.Errorf("tracks = %v, want %v", tracks, want)
	}
}

func TestScanDirEmpty(t *testing.T) {
	var empty fstest.MapFS
	m, err := ScanDir(empty, IconExtensions)
	if err != nil {
		t.Fatalf("ScanDir on empty fs: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("got %v, want nothing", m)
	}
}
