package life

import (
	"fmt"

	"github.com/Nemo9439/game-of-life/pkg/core"
)

// HeightRange selects how tall a newly seeded alive cell is.
type HeightRange uint8

const (
	// HeightFixed draws uniformly from [1, MaxHeight].
	HeightFixed HeightRange = iota
	// HeightBinary always yields 1 (classic binary life).
	HeightBinary
	// HeightQuarter draws uniformly from [1, max(1, N/4)].
	HeightQuarter
)

func (h HeightRange) String() string {
	switch h {
	case HeightFixed:
		return "fixed"
	case HeightBinary:
		return "binary"
	case HeightQuarter:
		return "quarter"
	default:
		return fmt.Sprintf("HeightRange(%d)", uint8(h))
	}
}

// ParseHeightRange maps an identifier to a HeightRange.
func ParseHeightRange(s string) (HeightRange, error) {
	switch s {
	case "fixed":
		return HeightFixed, nil
	case "binary":
		return HeightBinary, nil
	case "quarter":
		return HeightQuarter, nil
	}
	return 0, fmt.Errorf("life: unknown height range %q", s)
}

// SeedPolicy decides which cells start alive and how tall they are. Chance
// and Heights are independent knobs.
type SeedPolicy struct {
	// Chance is p in "alive with probability 1/p".
	Chance    int
	Heights   HeightRange
	MaxHeight int
}

// DefaultSeedPolicy matches the original board: one in three alive, heights 1..10.
func DefaultSeedPolicy() SeedPolicy {
	return SeedPolicy{Chance: 3, Heights: HeightFixed, MaxHeight: 10}
}

// Validate rejects policies that cannot produce a height.
func (p SeedPolicy) Validate() error {
	if p.Chance < 1 {
		return fmt.Errorf("life: seed chance must be >= 1, got %d", p.Chance)
	}
	switch p.Heights {
	case HeightFixed:
		if p.MaxHeight < 1 {
			return fmt.Errorf("life: fixed max height must be >= 1, got %d", p.MaxHeight)
		}
	case HeightBinary, HeightQuarter:
	default:
		return fmt.Errorf("life: unknown height range %d", p.Heights)
	}
	return nil
}

// maxHeight resolves the upper bound of the alive range for a grid of size n.
func (p SeedPolicy) maxHeight(n int) int {
	switch p.Heights {
	case HeightBinary:
		return 1
	case HeightQuarter:
		return max(1, n/4)
	default:
		return max(1, p.MaxHeight)
	}
}

func (p SeedPolicy) draw(rng *core.RNG, n int) int {
	if !rng.OneIn(p.Chance) {
		return 0
	}
	return rng.Between(1, p.maxHeight(n))
}

// New creates an n*n grid seeded by the policy. The same RNG seed always
// yields the same grid.
func New(n int, policy SeedPolicy, rng *core.RNG) (Grid, error) {
	if err := policy.Validate(); err != nil {
		return Grid{}, err
	}
	g, err := Empty(n)
	if err != nil {
		return Grid{}, err
	}
	for i := range g.cells {
		g.cells[i].Height = policy.draw(rng, n)
	}
	return g, nil
}

// Reseed returns a copy of g where only dead cells are redrawn from the
// policy. Alive cells keep their heights.
func (g Grid) Reseed(policy SeedPolicy, rng *core.RNG) Grid {
	next := g.clone()
	for i := range next.cells {
		if next.cells[i].Alive() {
			continue
		}
		next.cells[i].Height = policy.draw(rng, g.n)
	}
	return next
}
