package assets

import (
	"io/fs"
	"path"
	"slices"
	"strings"
)

// File extensions the loaders understand.
var (
	IconExtensions  = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}
	TrackExtensions = []string{".ogg", ".wav"}
)

// Manifest is an explicit, ordered list of asset file names.
type Manifest []string

// ScanDir lists the files in the root of fsys whose extension is one of
// exts, sorted by name. Hidden files and directories are skipped.
func ScanDir(fsys fs.FS, exts []string) (Manifest, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var m Manifest
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if slices.Contains(exts, strings.ToLower(path.Ext(name))) {
			m = append(m, name)
		}
	}
	slices.Sort(m)
	return m, nil
}
