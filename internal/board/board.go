// Package board holds the icon grid and the per-cell reveal flags.
package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrPoolExhausted is returned when the icon pool holds fewer distinct
// icons than the board has pairs.
var ErrPoolExhausted = errors.New("not enough icons in asset pool")

// Cell is a board position. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// IconID indexes an icon in the asset pool.
type IconID int

// Board is the grid of icon assignments. It never changes after creation.
type Board struct {
	width, height int
	cells         [][]IconID // cells[x][y]
}

// Generate samples width*height/2 distinct icons out of a pool of poolSize,
// doubles them, shuffles the lot and deals it column by column.
func Generate(rng *rand.Rand, poolSize, width, height int) (*Board, error) {
	if width <= 0 || height <= 0 || (width*height)%2 != 0 {
		return nil, fmt.Errorf("board %dx%d cannot be filled with pairs", width, height)
	}
	pairs := width * height / 2
	if poolSize < pairs {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrPoolExhausted, pairs, poolSize)
	}

	chosen := rng.Perm(poolSize)[:pairs]
	icons := make([]IconID, 0, 2*pairs)
	for _, i := range chosen {
		icons = append(icons, IconID(i), IconID(i))
	}
	rng.Shuffle(len(icons), func(i, j int) {
		icons[i], icons[j] = icons[j], icons[i]
	})

	b := &Board{width: width, height: height, cells: make([][]IconID, width)}
	for x := 0; x < width; x++ {
		b.cells[x] = icons[x*height : (x+1)*height : (x+1)*height]
	}
	return b, nil
}

// New builds a board from explicit columns, cols[x][y].
func New(cols [][]IconID) (*Board, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, errors.New("empty board")
	}
	height := len(cols[0])
	counts := make(map[IconID]int)
	b := &Board{width: len(cols), height: height, cells: make([][]IconID, len(cols))}
	for x, col := range cols {
		if len(col) != height {
			return nil, fmt.Errorf("column %d has %d rows, want %d", x, len(col), height)
		}
		b.cells[x] = append([]IconID(nil), col...)
		for _, id := range col {
			counts[id]++
		}
	}
	for id, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("icon %d appears %d times, want 2", id, n)
		}
	}
	return b, nil
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }

// Contains reports whether c lies on the board.
func (b *Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// IconAt returns the icon at c. It panics if c is off the board.
func (b *Board) IconAt(c Cell) IconID {
	if !b.Contains(c) {
		panic(fmt.Sprintf("board: cell %v outside %dx%d", c, b.width, b.height))
	}
	return b.cells[c.X][c.Y]
}

// Cells lists every cell in deal order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.width*b.height)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Equal reports whether both boards hold the same icon at every cell.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for x := range b.cells {
		for y := range b.cells[x] {
			if b.cells[x][y] != o.cells[x][y] {
				return false
			}
		}
	}
	return true
}
