package main

import (
	"log"

	"github.com/Nemo9439/game-of-life/internal/app"
	"github.com/Nemo9439/game-of-life/internal/core"
)

type identified interface {
	ID() string
}

func mustOpen(cfg *app.Config) core.Sim {
	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.Open(cfg.Sim, opts)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.Sim, err)
	}
	logStartup(sim)
	return sim
}

// logStartup records which run is starting and with what parameters.
func logStartup(sim core.Sim) {
	id := "-"
	if s, ok := sim.(identified); ok {
		id = s.ID()
	}
	log.Printf("starting %s run=%s interval=%v", sim.Name(), id, sim.Interval())
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, g := range p.Parameters().Groups {
		for _, param := range g.Params {
			log.Printf("  %s/%s = %s", g.Name, param.Key, param.Value)
		}
	}
}
