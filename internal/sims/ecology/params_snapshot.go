package ecology

import (
	"strconv"

	"ecosim/internal/core"
)

// Parameters reports the world setup, the fixed rule constants and the
// latest census.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.census
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.W),
				intParam("h", "Height", w.grid.H),
				int64Param("seed", "Seed", w.seed),
				stringParam("mode", "Update mode", w.cfg.Mode.String()),
				boolParam("free_herbivore_down_birth", "Free down birth", w.cfg.Compat.FreeHerbivoreDownBirth),
			},
		},
		{
			Name:    "Rules",
			Summary: "fixed",
			Params: []core.Parameter{
				intParam("initial_life", "Initial life", w.stepper.Rules.InitialLife),
				intParam("life_addition", "Life addition", w.stepper.Rules.LifeAddition),
				intParam("birth_req", "Birth requirement", w.stepper.Rules.BirthReq),
				intParam("birth_cost", "Birth cost", w.stepper.Rules.BirthCost),
				intParam("over_population", "Overpopulation", w.stepper.Rules.OverPopulation),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("generation", "Generation", w.generation),
				intParam("herbivores", "Herbivores", c.Herbivores),
				intParam("carnivores", "Carnivores", c.Carnivores),
				intParam("empty", "Empty", c.Empty),
			},
		},
		{
			Name: "Last Step",
			Params: []core.Parameter{
				intParam("herbivore_births", "Herbivore births", c.HerbivoreBirths),
				intParam("carnivore_births", "Carnivore births", c.CarnivoreBirths),
				intParam("kills", "Kills", c.Kills),
				intParam("starved", "Starved", c.Starved),
				intParam("herbivores_overcrowded", "Herbivores overcrowded", c.HerbivoresOvercrowded),
				intParam("carnivores_overcrowded", "Carnivores overcrowded", c.CarnivoresOvercrowded),
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
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
