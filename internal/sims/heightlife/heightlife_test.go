package heightlife

import (
	"errors"
	"iter"
	"sync"
	"testing"

	"github.com/Nemo9439/game-of-life/internal/core"
	"github.com/Nemo9439/game-of-life/pkg/sims/life"
)

type recorder struct {
	batches [][]life.Change
}

func (r *recorder) Apply(changes iter.Seq[life.Change]) {
	r.batches = append(r.batches, life.Collect(changes))
}

func (r *recorder) last() []life.Change {
	if len(r.batches) == 0 {
		return nil
	}
	return r.batches[len(r.batches)-1]
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 8
	cfg.Seed = 5
	return cfg
}

func TestResetDeterministic(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !a.Generation().Equal(b.Generation()) {
		t.Fatal("same seed produced different boards")
	}

	initial := a.Generation()
	a.Step()
	a.Reset(0)
	if !initial.Equal(a.Generation()) {
		t.Fatal("Reset(0) should rebuild the configured seed's board")
	}
	if a.Turn() != 0 {
		t.Fatalf("turn = %d after Reset, want 0", a.Turn())
	}

	a.Reset(777)
	seeded := a.Generation()
	a.Reset(777)
	if !seeded.Equal(a.Generation()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if seeded.Equal(initial) {
		t.Fatal("different seeds should produce different boards")
	}
	if a.ID() == b.ID() || a.ID() == "" {
		t.Fatalf("worlds should carry distinct ids, got %q and %q", a.ID(), b.ID())
	}
}

func TestSubscribeReceivesResyncThenDiffs(t *testing.T) {
	w, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	w.Subscribe(rec)

	if got := len(rec.last()); got != 64 {
		t.Fatalf("initial resync carried %d records, want 64", got)
	}

	prev := w.Generation()
	w.Step()
	next := w.Generation()
	want := life.Collect(life.Diff(prev, next))
	got := rec.last()
	if len(got) != len(want) {
		t.Fatalf("step delivered %d records, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if w.Turn() != 1 {
		t.Fatalf("turn = %d, want 1", w.Turn())
	}
}

func TestMirrorStaysInSync(t *testing.T) {
	cfg := smallConfig()
	cfg.Edge = life.Toroidal
	cfg.Rule = life.Decay
	w, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	mirror := core.NewByteGrid(cfg.Size, cfg.Size)
	w.Subscribe(core.ListenerFunc(func(changes iter.Seq[life.Change]) { mirror.Apply(changes) }))

	for i := 0; i < 20; i++ {
		switch i % 5 {
		case 1:
			if err := w.Toggle(i%cfg.Size, (i*3)%cfg.Size); err != nil {
				t.Fatal(err)
			}
		case 3:
			w.Reseed()
		default:
			w.Step()
		}
		heights := w.Generation().Heights()
		for r := range heights {
			for c := range heights[r] {
				if int(mirror.At(c, r)) != heights[r][c] {
					t.Fatalf("iteration %d: mirror (%d,%d)=%d, board=%d", i, r, c, mirror.At(c, r), heights[r][c])
				}
			}
		}
	}
}

func TestToggleNotifiesSingleCell(t *testing.T) {
	w, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	w.Subscribe(rec)

	before, _ := w.Generation().At(2, 3)
	if err := w.Toggle(2, 3); err != nil {
		t.Fatal(err)
	}
	got := rec.last()
	if len(got) != 1 {
		t.Fatalf("toggle delivered %d records, want 1", len(got))
	}
	want := 1
	if before.Alive() {
		want = 0
	}
	if got[0].Row != 2 || got[0].Col != 3 || got[0].Height != want || got[0].Key != life.KeyOf(8, 2, 3) {
		t.Fatalf("toggle record = %+v", got[0])
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	w, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	w.Subscribe(rec)
	batches := len(rec.batches)
	if err := w.Toggle(8, 0); !errors.Is(err, life.ErrOutOfBounds) {
		t.Fatalf("Toggle(8,0) error = %v, want ErrOutOfBounds", err)
	}
	if len(rec.batches) != batches {
		t.Fatal("failed toggle must not notify listeners")
	}
}

func TestToggleUsesAliveHeight(t *testing.T) {
	cfg := smallConfig()
	cfg.Seeding.Chance = 1 << 30
	cfg.AliveHeight = 4
	w, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Toggle(0, 0); err != nil {
		t.Fatal(err)
	}
	if c, _ := w.Generation().At(0, 0); c.Height != 4 {
		t.Fatalf("toggled height %d, want 4", c.Height)
	}
}

func TestReseedLeavesAliveCells(t *testing.T) {
	w, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	before := w.Generation().Heights()
	w.Reseed()
	after := w.Generation().Heights()
	for r := range before {
		for c := range before[r] {
			if before[r][c] > 0 && before[r][c] != after[r][c] {
				t.Fatalf("reseed changed alive cell (%d,%d)", r, c)
			}
		}
	}
}

func TestConcurrentTogglesAndSteps(t *testing.T) {
	cfg := smallConfig()
	w, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	mirror := core.NewByteGrid(cfg.Size, cfg.Size)
	w.Subscribe(core.ListenerFunc(func(changes iter.Seq[life.Change]) { mirror.Apply(changes) }))

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if g%2 == 0 {
					w.Step()
					continue
				}
				if err := w.Toggle(i%cfg.Size, g); err != nil {
					t.Error(err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if w.Turn() != 100 {
		t.Fatalf("turn = %d, want 100", w.Turn())
	}
	heights := w.Generation().Heights()
	for r := range heights {
		for c := range heights[r] {
			if int(mirror.At(c, r)) != heights[r][c] {
				t.Fatalf("mirror diverged at (%d,%d)", r, c)
			}
		}
	}
}

func TestRegisteredPresets(t *testing.T) {
	sim, err := core.Open("heightlife", map[string]string{"size": "10"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "heightlife" || sim.Size() != (core.Size{W: 10, H: 10}) {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}

	sim, err = core.Open("heightlife-decay", nil)
	if err != nil {
		t.Fatal(err)
	}
	w, ok := sim.(*World)
	if !ok {
		t.Fatalf("preset returned %T", sim)
	}
	if w.Config().Rule != life.Decay || w.Config().Edge != life.Toroidal {
		t.Fatalf("decay preset config = %+v", w.Config())
	}

	for _, name := range []string{"heightlife", "heightlife-decay"} {
		sim, err := core.Open(name, map[string]string{"rule": "nope"})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: bad preset config error = %v", name, err)
		}
		if sim != nil {
			t.Fatalf("%s: failed open returned non-nil sim %T", name, sim)
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	w, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	snap := w.Parameters()
	checks := map[string]string{
		"size":    "8",
		"seed":    "5",
		"tick":    "500ms",
		"edge":    "clamped",
		"rule":    "revive",
		"heights": "fixed",
		"chance":  "3",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
	var _ core.ParameterProvider = w
}
