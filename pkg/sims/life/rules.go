package life

import "fmt"

// DefaultCap is the height above which a cell is treated as overgrown.
const DefaultCap = 10

// EdgePolicy controls how neighbours beyond the border are resolved.
type EdgePolicy uint8

const (
	// Clamped treats cells past the border as absent.
	Clamped EdgePolicy = iota
	// Toroidal wraps coordinates modulo N.
	Toroidal
)

func (e EdgePolicy) String() string {
	switch e {
	case Clamped:
		return "clamped"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(e))
	}
}

// ParseEdgePolicy maps an identifier to an EdgePolicy.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "clamped":
		return Clamped, nil
	case "toroidal", "wrap":
		return Toroidal, nil
	}
	return 0, fmt.Errorf("life: unknown edge policy %q", s)
}

// RuleKind selects the height transition rule.
type RuleKind uint8

const (
	// Revive zeroes under/overpopulated cells and resets overgrown cells to 1.
	Revive RuleKind = iota
	// Decay shrinks under/overpopulated cells by one and kills overgrown cells.
	Decay
)

func (k RuleKind) String() string {
	switch k {
	case Revive:
		return "revive"
	case Decay:
		return "decay"
	default:
		return fmt.Sprintf("RuleKind(%d)", uint8(k))
	}
}

// ParseRuleKind maps an identifier to a RuleKind.
func ParseRuleKind(s string) (RuleKind, error) {
	switch s {
	case "revive", "a":
		return Revive, nil
	case "decay", "b":
		return Decay, nil
	}
	return 0, fmt.Errorf("life: unknown rule %q", s)
}

// Rules bundles everything Next needs besides the grid.
type Rules struct {
	Edge EdgePolicy
	Rule RuleKind
	// Cap is the overgrowth threshold; zero means DefaultCap.
	Cap int
}

// Validate rejects unknown identifiers and negative caps.
func (r Rules) Validate() error {
	if r.Edge != Clamped && r.Edge != Toroidal {
		return fmt.Errorf("life: unknown edge policy %d", r.Edge)
	}
	if r.Rule != Revive && r.Rule != Decay {
		return fmt.Errorf("life: unknown rule %d", r.Rule)
	}
	if r.Cap < 0 {
		return fmt.Errorf("life: cap must be >= 0, got %d", r.Cap)
	}
	return nil
}

func (r Rules) cap() int {
	if r.Cap == 0 {
		return DefaultCap
	}
	return r.Cap
}

// Transition returns the next height of a cell given its current height and
// the number of alive Moore neighbours. The result is never negative.
func (r Rules) Transition(height, neighbors int) int {
	if height > r.cap() {
		if r.Rule == Decay {
			return 0
		}
		return 1
	}
	if height <= 0 {
		if neighbors == 3 {
			return 1
		}
		return 0
	}
	if neighbors == 2 || neighbors == 3 {
		return height + 1
	}
	if r.Rule == Decay {
		return max(0, height-1)
	}
	return 0
}
