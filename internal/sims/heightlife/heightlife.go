package heightlife

import (
	"sync"
	"time"

	"github.com/Nemo9439/game-of-life/internal/core"
	pkgcore "github.com/Nemo9439/game-of-life/pkg/core"
	"github.com/Nemo9439/game-of-life/pkg/sims/life"

	"github.com/google/uuid"
)

// World owns the current generation and serialises every mutation of it.
// Listeners are notified while the lock is held, so they must not call back
// into the World.
type World struct {
	mu sync.Mutex

	id    string
	name  string
	cfg   Config
	rules life.Rules

	rng  *pkgcore.RNG
	gen  life.Grid
	turn int

	listeners []core.Listener
}

// New validates cfg and seeds the initial generation.
func New(cfg Config) (*World, error) {
	return newNamed("heightlife", cfg)
}

func newNamed(name string, cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		id:    uuid.New().String(),
		name:  name,
		cfg:   cfg,
		rules: cfg.Rules(),
		rng:   pkgcore.NewRNG(cfg.Seed),
	}
	gen, err := life.New(cfg.Size, cfg.Seeding, w.rng)
	if err != nil {
		return nil, err
	}
	w.gen = gen
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// ID identifies this run.
func (w *World) ID() string { return w.id }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Interval is the configured tick interval.
func (w *World) Interval() time.Duration { return w.cfg.TickInterval }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Turn reports how many generations have been computed since the last Reset.
func (w *World) Turn() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.turn
}

// Generation returns the current immutable generation.
func (w *World) Generation() life.Grid {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen
}

// Subscribe registers l and immediately hands it a full resync of the board.
func (w *World) Subscribe(l core.Listener) {
	if l == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, l)
	l.Apply(life.Resync(w.gen))
}

// Step advances the simulation by one generation.
func (w *World) Step() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.replace(life.Next(w.gen, w.rules))
	w.turn++
}

// Toggle flips a single cell between dead and the configured alive height.
func (w *World) Toggle(row, col int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	next, err := w.gen.Toggle(row, col, w.cfg.AliveHeight)
	if err != nil {
		return err
	}
	w.replace(next)
	return nil
}

// Reseed sprinkles new life into dead cells, leaving live structures alone.
func (w *World) Reseed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.replace(w.gen.Reseed(w.cfg.Seeding, w.rng))
}

// Reset replaces the board wholesale. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rng = pkgcore.NewRNG(seed)
	next, err := life.New(w.cfg.Size, w.cfg.Seeding, w.rng)
	if err != nil {
		// Size and policy were validated in New.
		panic(err)
	}
	w.replace(next)
	w.turn = 0
}

func (w *World) replace(next life.Grid) {
	prev := w.gen
	w.gen = next
	for _, l := range w.listeners {
		l.Apply(life.Diff(prev, next))
	}
}

func init() {
	core.Register("heightlife", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		w, err := newNamed("heightlife", c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	core.Register("heightlife-decay", func(cfg map[string]string) (core.Sim, error) {
		c, err := Overlay(DecayConfig(), cfg)
		if err != nil {
			return nil, err
		}
		w, err := newNamed("heightlife-decay", c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
