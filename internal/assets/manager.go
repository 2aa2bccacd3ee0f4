package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/webp" // Register WebP format
)

// LoadError reports an asset file that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DecodeIcon decodes an image and resamples it to a size x size square
// when its bounds differ.
func DecodeIcon(r io.Reader, size int) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst, nil
}

// LoadIcons decodes every file in m. The first failure aborts the load.
func LoadIcons(fsys fs.FS, m Manifest, size int, log logrus.FieldLogger) ([]image.Image, error) {
	icons := make([]image.Image, 0, len(m))
	for _, name := range m {
		img, err := loadIcon(fsys, name, size)
		if err != nil {
			return nil, err
		}
		icons = append(icons, img)
	}
	log.WithField("count", len(icons)).Info("icons loaded")
	return icons, nil
}

func loadIcon(fsys fs.FS, name string, size int) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	defer f.Close()

	img, err := DecodeIcon(f, size)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return img, nil
}
