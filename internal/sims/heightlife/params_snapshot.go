package heightlife

import (
	"strconv"
	"time"

	"github.com/Nemo9439/game-of-life/internal/core"
)

// Parameters describes the active configuration.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", c.Size),
				int64Param("seed", "Seed", c.Seed),
				durationParam("tick", "Tick interval", c.TickInterval),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("chance", "Alive one in", c.Seeding.Chance),
				stringParam("heights", "Height range", c.Seeding.Heights.String()),
				intParam("max_height", "Max height", c.Seeding.MaxHeight),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				stringParam("edge", "Edge policy", c.Edge.String()),
				stringParam("rule", "Transition rule", c.Rule.String()),
				intParam("cap", "Overgrowth cap", c.Rules().Cap),
				intParam("alive_height", "Toggle height", c.AliveHeight),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}
