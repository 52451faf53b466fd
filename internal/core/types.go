package core

import (
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/Nemo9439/game-of-life/pkg/sims/life"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Listener receives the cells that changed after every mutation of a Sim.
type Listener interface {
	Apply(changes iter.Seq[life.Change])
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(changes iter.Seq[life.Change])

// Apply calls f(changes).
func (f ListenerFunc) Apply(changes iter.Seq[life.Change]) { f(changes) }

// Sim defines the contract a view drives: stepping on a timer, interactive
// edits, and a subscription that reports what changed.
type Sim interface {
	Name() string
	Size() Size
	Turn() int
	Interval() time.Duration
	Reset(seed int64)
	Step()
	Toggle(row, col int) error
	Reseed()
	Subscribe(l Listener)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the named simulation.
func Open(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	return f(cfg)
}
