package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"memorypuzzle/internal/board"
)

// IconSet is the icon pool uploaded to the GPU. Index i is icon ID i.
type IconSet struct {
	images []*ebiten.Image
}

func NewIconSet(icons []image.Image) *IconSet {
	s := &IconSet{images: make([]*ebiten.Image, len(icons))}
	for i, img := range icons {
		s.images[i] = ebiten.NewImageFromImage(img)
	}
	return s
}

// Len is the number of distinct icons a board can draw from.
func (s *IconSet) Len() int { return len(s.images) }

func (s *IconSet) Icon(id board.IconID) *ebiten.Image {
	return s.images[id]
}

// drawIcon blits the icon at its box's top-left corner.
func (s *IconSet) drawIcon(screen *ebiten.Image, id board.IconID, left, top int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(left), float64(top))
	screen.DrawImage(s.Icon(id), op)
}
