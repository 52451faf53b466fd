package life

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside [0, N).
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrInvalidSize is returned when a grid is requested with size <= 0.
	ErrInvalidSize = errors.New("life: grid size must be positive")
	// ErrInvalidGrid is returned when fixture rows are ragged, non-square or negative.
	ErrInvalidGrid = errors.New("life: invalid grid")
)

// Cell is a single grid position. Height 0 is dead; anything above is alive.
type Cell struct {
	Height int
}

// Alive reports whether the cell has a positive height.
func (c Cell) Alive() bool { return c.Height >= 1 }

// Key identifies a cell position as row*N + col. It stays stable for the
// lifetime of a grid size and is the join key for view handles.
type Key int

// KeyOf packs row and col for a grid of size n.
func KeyOf(n, row, col int) Key { return Key(row*n + col) }

// RowCol unpacks the key for a grid of size n.
func (k Key) RowCol(n int) (row, col int) { return int(k) / n, int(k) % n }

// Grid is one immutable generation: a square n*n board stored row-major.
// Operations that change cells return a new Grid and leave the receiver intact.
type Grid struct {
	n     int
	cells []Cell
}

// Empty returns an all-dead grid of the given size.
func Empty(n int) (Grid, error) {
	if n <= 0 {
		return Grid{}, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return Grid{n: n, cells: make([]Cell, n*n)}, nil
}

// FromHeights builds a grid from explicit rows of heights. Every row must have
// exactly len(rows) entries and no height may be negative.
func FromHeights(rows [][]int) (Grid, error) {
	n := len(rows)
	g, err := Empty(n)
	if err != nil {
		return Grid{}, err
	}
	for r, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), n)
		}
		for c, h := range row {
			if h < 0 {
				return Grid{}, fmt.Errorf("%w: negative height %d at (%d,%d)", ErrInvalidGrid, h, r, c)
			}
			g.cells[r*n+c] = Cell{Height: h}
		}
	}
	return g, nil
}

// Size returns N.
func (g Grid) Size() int { return g.n }

// Contains reports whether (row, col) lies on the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// At returns the cell at (row, col).
func (g Grid) At(row, col int) (Cell, error) {
	if !g.Contains(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.n, g.n)
	}
	return g.cells[row*g.n+col], nil
}

// Key returns the packed key for (row, col) on this grid.
func (g Grid) Key(row, col int) Key { return KeyOf(g.n, row, col) }

// Toggle returns a copy of g with the target flipped between 0 and aliveHeight.
// Alive cells of any height become dead. aliveHeight below 1 is treated as 1.
func (g Grid) Toggle(row, col, aliveHeight int) (Grid, error) {
	if !g.Contains(row, col) {
		return Grid{}, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.n, g.n)
	}
	if aliveHeight < 1 {
		aliveHeight = 1
	}
	next := g.clone()
	idx := row*g.n + col
	if next.cells[idx].Alive() {
		next.cells[idx].Height = 0
	} else {
		next.cells[idx].Height = aliveHeight
	}
	return next, nil
}

// Heights returns a fresh row-major copy of the heights.
func (g Grid) Heights() [][]int {
	rows := make([][]int, g.n)
	for r := range rows {
		rows[r] = make([]int, g.n)
		for c := range rows[r] {
			rows[r][c] = g.cells[r*g.n+c].Height
		}
	}
	return rows
}

// Population counts alive cells.
func (g Grid) Population() int {
	alive := 0
	for _, c := range g.cells {
		if c.Alive() {
			alive++
		}
	}
	return alive
}

// Equal reports whether both grids have the same size and heights.
func (g Grid) Equal(other Grid) bool {
	if g.n != other.n {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g Grid) clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{n: g.n, cells: cells}
}
