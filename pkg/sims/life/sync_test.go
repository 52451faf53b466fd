package life

import (
	"slices"
	"testing"
)

func TestDiffEmitsOnlyChangedCells(t *testing.T) {
	prev := mustGrid(t, [][]int{
		{0, 1, 0},
		{2, 0, 0},
		{0, 0, 5},
	})
	next := mustGrid(t, [][]int{
		{0, 2, 0},
		{2, 0, 1},
		{3, 0, 5},
	})
	got := Collect(Diff(prev, next))
	want := []Change{
		{Key: 1, Row: 0, Col: 1, Height: 2},
		{Key: 5, Row: 1, Col: 2, Height: 1},
		{Key: 6, Row: 2, Col: 0, Height: 3},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Diff = %+v, want %+v", got, want)
	}
}

func TestDiffIdenticalIsEmpty(t *testing.T) {
	g, err := New(10, DefaultSeedPolicy(), rngFor(3))
	if err != nil {
		t.Fatal(err)
	}
	if got := Collect(Diff(g, g)); len(got) != 0 {
		t.Fatalf("identical generations produced %d changes", len(got))
	}
}

func TestDiffMatchesBruteForce(t *testing.T) {
	g, err := New(16, DefaultSeedPolicy(), rngFor(8))
	if err != nil {
		t.Fatal(err)
	}
	next := Next(g, Rules{Edge: Toroidal, Rule: Decay})
	before, after := g.Heights(), next.Heights()

	var want []Change
	for r := range after {
		for c := range after[r] {
			if before[r][c] != after[r][c] {
				want = append(want, Change{Key: next.Key(r, c), Row: r, Col: c, Height: after[r][c]})
			}
		}
	}
	got := Collect(Diff(g, next))
	if !slices.Equal(got, want) {
		t.Fatalf("Diff disagrees with cell-by-cell comparison: %d vs %d records", len(got), len(want))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Key <= got[i-1].Key {
			t.Fatalf("records out of row-major order at %d", i)
		}
	}
	if !equalRows(before, g.Heights()) || !equalRows(after, next.Heights()) {
		t.Fatal("Diff mutated an input")
	}
}

func TestResyncVisitsEveryCellOnce(t *testing.T) {
	g, err := New(5, DefaultSeedPolicy(), rngFor(4))
	if err != nil {
		t.Fatal(err)
	}
	got := Collect(Resync(g))
	if len(got) != 25 {
		t.Fatalf("Resync emitted %d records, want 25", len(got))
	}
	for i, ch := range got {
		if int(ch.Key) != i {
			t.Fatalf("record %d has key %d", i, ch.Key)
		}
		c, _ := g.At(ch.Row, ch.Col)
		if c.Height != ch.Height {
			t.Fatalf("record %d height %d, grid has %d", i, ch.Height, c.Height)
		}
	}
}

func TestDiffStopsEarly(t *testing.T) {
	prev, _ := Empty(4)
	next := prev.Reseed(SeedPolicy{Chance: 1, Heights: HeightBinary}, rngFor(1))
	seen := 0
	for range Diff(prev, next) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("consumed %d records, want 3", seen)
	}
}

func TestDiffSizeMismatchPanics(t *testing.T) {
	a, _ := Empty(2)
	b, _ := Empty(3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched sizes")
		}
	}()
	Diff(a, b)
}
