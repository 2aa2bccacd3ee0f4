// Package geometry maps board cells to window pixels and back.
package geometry

import (
	"image"

	"memorypuzzle/internal/board"
)

// HighlightOutset is how far the hover outline sits outside a box.
const HighlightOutset = 5

// Layout is the fixed pixel arrangement of the board.
type Layout struct {
	BoxSize     int
	GapSize     int
	BoardWidth  int
	BoardHeight int
	Margin      int

	xMargin, yMargin int
}

// NewLayout derives the margins that center the grid in the window.
func NewLayout(boxSize, gapSize, boardWidth, boardHeight, margin int) Layout {
	l := Layout{
		BoxSize:     boxSize,
		GapSize:     gapSize,
		BoardWidth:  boardWidth,
		BoardHeight: boardHeight,
		Margin:      margin,
	}
	w, h := l.WindowSize()
	l.xMargin = (w - boardWidth*(boxSize+gapSize)) / 2
	l.yMargin = (h - boardHeight*(boxSize+gapSize)) / 2
	return l
}

// WindowSize returns the window width and height in pixels.
func (l Layout) WindowSize() (int, int) {
	w := l.BoxSize*l.BoardWidth + l.GapSize*(l.BoardWidth+1) + l.Margin
	h := l.BoxSize*l.BoardHeight + l.GapSize*(l.BoardHeight+1) + l.Margin
	return w, h
}

// Margins returns the left and top offset of cell (0, 0).
func (l Layout) Margins() (int, int) {
	return l.xMargin, l.yMargin
}

// CellToPixel returns the top-left pixel of the box at c.
func (l Layout) CellToPixel(c board.Cell) (left, top int) {
	left = c.X*(l.BoxSize+l.GapSize) + l.xMargin
	top = c.Y*(l.BoxSize+l.GapSize) + l.yMargin
	return left, top
}

// Box returns the pixel rectangle of the box at c.
func (l Layout) Box(c board.Cell) image.Rectangle {
	left, top := l.CellToPixel(c)
	return image.Rect(left, top, left+l.BoxSize, top+l.BoxSize)
}

// Highlight returns the rectangle of the hover outline around c.
func (l Layout) Highlight(c board.Cell) image.Rectangle {
	return l.Box(c).Inset(-HighlightOutset)
}

// PixelToCell returns the cell whose box contains (px, py). Points in a gap
// or outside the grid report false.
func (l Layout) PixelToCell(px, py int) (board.Cell, bool) {
	x, ok := l.axis(px-l.xMargin, l.BoardWidth)
	if !ok {
		return board.Cell{}, false
	}
	y, ok := l.axis(py-l.yMargin, l.BoardHeight)
	if !ok {
		return board.Cell{}, false
	}
	return board.Cell{X: x, Y: y}, true
}

func (l Layout) axis(offset, cells int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	stride := l.BoxSize + l.GapSize
	i := offset / stride
	if i >= cells || offset%stride >= l.BoxSize {
		return 0, false
	}
	return i, true
}
