// Package render draws a controller scene onto the screen.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"memorypuzzle/internal/anim"
	"memorypuzzle/internal/board"
	"memorypuzzle/internal/config"
	"memorypuzzle/internal/gamemode"
	"memorypuzzle/internal/geometry"
)

const highlightWidth = 2

// Renderer is the drawing context: layout, colours and icons.
type Renderer struct {
	layout  geometry.Layout
	palette config.Palette
	icons   *IconSet
}

func New(layout geometry.Layout, palette config.Palette, icons *IconSet) *Renderer {
	return &Renderer{layout: layout, palette: palette, icons: icons}
}

func (r *Renderer) background(t anim.Tone) color.RGBA {
	if t == anim.ToneLight {
		return r.palette.LightBackground
	}
	return r.palette.Background
}

// Draw renders one frame of s.
func (r *Renderer) Draw(screen *ebiten.Image, s gamemode.Scene) {
	bg := r.background(s.Tone)
	screen.Fill(bg)

	wiping := make(map[board.Cell]bool, len(s.Overlay.Cells))
	for _, c := range s.Overlay.Cells {
		wiping[c] = true
	}

	for _, c := range s.Board.Cells() {
		if wiping[c] {
			continue
		}
		left, top := r.layout.CellToPixel(c)
		if s.Revealed.Get(c) {
			r.icons.drawIcon(screen, s.Board.IconAt(c), left, top)
		} else {
			r.fill(screen, r.layout.Box(c), r.palette.Box)
		}
	}

	for _, c := range s.Overlay.Cells {
		r.drawWipe(screen, s.Board, c, s.Overlay.Coverage, bg)
	}

	if s.HasHighlight {
		h := r.layout.Highlight(s.Highlight)
		// Keep the stroke inside the outline rectangle.
		vector.StrokeRect(screen,
			float32(h.Min.X)+highlightWidth/2, float32(h.Min.Y)+highlightWidth/2,
			float32(h.Dx()-highlightWidth), float32(h.Dy()-highlightWidth),
			highlightWidth, r.palette.Highlight, false)
	}
}

// drawWipe draws the icon with a cover of width coverage over its left side.
func (r *Renderer) drawWipe(screen *ebiten.Image, b *board.Board, c board.Cell, coverage int, bg color.Color) {
	box := r.layout.Box(c)
	r.fill(screen, box, bg)
	r.icons.drawIcon(screen, b.IconAt(c), box.Min.X, box.Min.Y)
	if coverage > 0 {
		cover := box
		cover.Max.X = box.Min.X + min(coverage, box.Dx())
		r.fill(screen, cover, r.palette.Box)
	}
}

func (r *Renderer) fill(screen *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)
}
