package life

import "fmt"

var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Next computes the following generation. It never mutates g and always
// returns a grid of the same size.
func Next(g Grid, rules Rules) Grid {
	next := Grid{n: g.n, cells: make([]Cell, len(g.cells))}
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			idx := row*g.n + col
			neighbors := g.Neighbors(row, col, rules.Edge)
			next.cells[idx].Height = rules.Transition(g.cells[idx].Height, neighbors)
		}
	}
	return next
}

// Neighbors counts alive cells in the Moore neighbourhood of (row, col).
func (g Grid) Neighbors(row, col int, edge EdgePolicy) int {
	n := g.n
	count := 0
	for _, d := range moore {
		r, c := row+d[0], col+d[1]
		if edge == Toroidal {
			r = (r%n + n) % n
			c = (c%n + n) % n
		} else if r < 0 || r >= n || c < 0 || c >= n {
			continue
		}
		count += g.aliveAt(r, c)
	}
	return count
}

func (g Grid) aliveAt(row, col int) int {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("life: neighbour (%d,%d) escaped %dx%d grid", row, col, g.n, g.n))
	}
	if g.cells[row*g.n+col].Alive() {
		return 1
	}
	return 0
}
