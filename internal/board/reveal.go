package board

import "fmt"

// RevealState tracks which cells are face up, indexed [x][y].
type RevealState [][]bool

// NewRevealState returns a width x height grid with every cell set to val.
func NewRevealState(width, height int, val bool) RevealState {
	r := make(RevealState, width)
	for x := range r {
		r[x] = make([]bool, height)
		for y := range r[x] {
			r[x][y] = val
		}
	}
	return r
}

func (r RevealState) check(c Cell) {
	if c.X < 0 || c.X >= len(r) || c.Y < 0 || c.Y >= len(r[c.X]) {
		panic(fmt.Sprintf("board: reveal cell %v out of range", c))
	}
}

// Get reports whether c is face up.
func (r RevealState) Get(c Cell) bool {
	r.check(c)
	return r[c.X][c.Y]
}

// Set flips c face up or down.
func (r RevealState) Set(c Cell, v bool) {
	r.check(c)
	r[c.X][c.Y] = v
}

// HasWon reports whether every cell is face up. An empty grid has not won.
func (r RevealState) HasWon() bool {
	if len(r) == 0 {
		return false
	}
	for _, col := range r {
		for _, v := range col {
			if !v {
				return false
			}
		}
	}
	return true
}

// PreviewGroupSize is how many cells the start preview flips at once:
// 20% of the pair count, rounded up, never below one.
func PreviewGroupSize(pairs int) int {
	n := (pairs + 4) / 5
	if n < 1 {
		n = 1
	}
	return n
}

// SplitIntoGroups cuts cells into consecutive groups of size; the last
// group may be shorter.
func SplitIntoGroups(size int, cells []Cell) [][]Cell {
	if size < 1 {
		size = 1
	}
	groups := make([][]Cell, 0, (len(cells)+size-1)/size)
	for i := 0; i < len(cells); i += size {
		end := min(i+size, len(cells))
		groups = append(groups, cells[i:end:end])
	}
	return groups
}
