package core

import (
	"iter"

	"github.com/Nemo9439/game-of-life/pkg/sims/life"
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Views keep one as their mirror of the simulation, indexed by life.Key.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set writes one change record, saturating the height at 255. It reports
// false and leaves the grid alone when the key falls outside it.
func (g *ByteGrid) Set(ch life.Change) bool {
	idx := int(ch.Key)
	if idx < 0 || idx >= len(g.data) {
		return false
	}
	g.data[idx] = uint8(min(max(ch.Height, 0), 255))
	return true
}

// Apply writes change records into the grid and returns how many landed.
func (g *ByteGrid) Apply(changes iter.Seq[life.Change]) int {
	applied := 0
	for ch := range changes {
		if g.Set(ch) {
			applied++
		}
	}
	return applied
}
