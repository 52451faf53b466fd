package heightlife

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Nemo9439/game-of-life/pkg/sims/life"
)

// ErrInvalidConfig wraps every configuration failure.
var ErrInvalidConfig = errors.New("heightlife: invalid config")

const (
	minTickInterval = time.Millisecond
	maxTickInterval = time.Hour
)

// Config controls the board, its seeding and the transition rules.
type Config struct {
	Size         int
	TickInterval time.Duration
	Seed         int64

	Seeding life.SeedPolicy

	Edge life.EdgePolicy
	Rule life.RuleKind
	// Cap is the overgrowth threshold; zero selects life.DefaultCap.
	Cap int
	// AliveHeight is what a toggled dead cell becomes.
	AliveHeight int
}

// DefaultConfig returns the standard configuration: a 30x30 clamped board
// seeded one-in-three with heights 1..10, stepped by the revive rule.
func DefaultConfig() Config {
	return Config{
		Size:         30,
		TickInterval: 500 * time.Millisecond,
		Seed:         1337,
		Seeding:      life.DefaultSeedPolicy(),
		Edge:         life.Clamped,
		Rule:         life.Revive,
		Cap:          life.DefaultCap,
		AliveHeight:  1,
	}
}

// DecayConfig is the wraparound variant where crowded cells erode instead of vanishing.
func DecayConfig() Config {
	c := DefaultConfig()
	c.Edge = life.Toroidal
	c.Rule = life.Decay
	c.TickInterval = 100 * time.Millisecond
	c.Seeding = life.SeedPolicy{Chance: 8, Heights: life.HeightQuarter}
	return c
}

// Rules returns the transition settings carried by the config.
func (c Config) Rules() life.Rules {
	return life.Rules{Edge: c.Edge, Rule: c.Rule, Cap: c.Cap}
}

// Validate rejects configurations that could only fail later during a tick.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.TickInterval < minTickInterval || c.TickInterval > maxTickInterval {
		return fmt.Errorf("%w: tick interval %v outside [%v, %v]", ErrInvalidConfig, c.TickInterval, minTickInterval, maxTickInterval)
	}
	if c.AliveHeight < 1 {
		return fmt.Errorf("%w: alive height must be >= 1, got %d", ErrInvalidConfig, c.AliveHeight)
	}
	if err := c.Seeding.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FromMap populates the default config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	return Overlay(DefaultConfig(), cfg)
}

// Overlay applies flag-style key/value pairs on top of base. Unknown keys are
// ignored; malformed values and unknown identifiers are errors.
func Overlay(base Config, cfg map[string]string) (Config, error) {
	c := base
	for key, v := range cfg {
		var err error
		switch key {
		case "size":
			c.Size, err = strconv.Atoi(v)
		case "tick":
			c.TickInterval, err = parseInterval(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "chance":
			c.Seeding.Chance, err = strconv.Atoi(v)
		case "heights":
			c.Seeding.Heights, err = life.ParseHeightRange(v)
		case "max_height":
			c.Seeding.MaxHeight, err = strconv.Atoi(v)
		case "edge":
			c.Edge, err = life.ParseEdgePolicy(v)
		case "rule":
			c.Rule, err = life.ParseRuleKind(v)
		case "cap":
			c.Cap, err = strconv.Atoi(v)
		case "alive_height":
			c.AliveHeight, err = strconv.Atoi(v)
		}
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// parseInterval accepts either a Go duration ("250ms") or bare milliseconds.
func parseInterval(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}
