package life

import (
	"fmt"
	"iter"
)

// Change reports the new state of one cell to a view.
type Change struct {
	Key    Key
	Row    int
	Col    int
	Height int
}

// Diff yields one Change per cell whose height differs between prev and next,
// in row-major order. Both grids must be the same size.
func Diff(prev, next Grid) iter.Seq[Change] {
	if prev.n != next.n {
		panic(fmt.Sprintf("life: diff across sizes %d and %d", prev.n, next.n))
	}
	return func(yield func(Change) bool) {
		for i, c := range next.cells {
			if prev.cells[i].Height == c.Height {
				continue
			}
			if !yield(next.change(i)) {
				return
			}
		}
	}
}

// Resync yields a Change for every cell of g in row-major order.
func Resync(g Grid) iter.Seq[Change] {
	return func(yield func(Change) bool) {
		for i := range g.cells {
			if !yield(g.change(i)) {
				return
			}
		}
	}
}

// Collect drains a change sequence into a slice.
func Collect(seq iter.Seq[Change]) []Change {
	var out []Change
	for ch := range seq {
		out = append(out, ch)
	}
	return out
}

func (g Grid) change(i int) Change {
	return Change{
		Key:    Key(i),
		Row:    i / g.n,
		Col:    i % g.n,
		Height: g.cells[i].Height,
	}
}
