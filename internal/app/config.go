package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	Seed  int64
	Size  int
	Tick  string
	Set   kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "heightlife", Scale: 16}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation preset to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 keeps the preset seed)")
	fs.IntVar(&c.Size, "size", c.Size, "board size N (0 keeps the preset size)")
	fs.StringVar(&c.Tick, "tick", c.Tick, "tick interval, e.g. 250ms (empty keeps the preset interval)")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// Options flattens the flags into the key/value map understood by sim factories.
// Dedicated flags win over -set entries for the same key.
func (c *Config) Options() (map[string]string, error) {
	opts := make(map[string]string, len(c.Set)+3)
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed -set %q, want key=value", kv)
		}
		opts[key] = value
	}
	if c.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	if c.Size != 0 {
		opts["size"] = strconv.Itoa(c.Size)
	}
	if c.Tick != "" {
		opts["tick"] = c.Tick
	}
	return opts, nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
