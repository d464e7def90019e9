package ecology

import "context"

// RunResult summarises a headless run of one world.
type RunResult struct {
	Seed           int64
	StepsSimulated int
	Final          Census

	PeakHerbivores int
	PeakCarnivores int
	TotalKills     int

	// Generation at which each species was first absent; -1 if it
	// survived the run.
	HerbivoresExtinctAt int
	CarnivoresExtinctAt int
}

// Survived reports whether both species were alive at the end of the run.
// Nothing spawns, so a species absent once stays absent.
func (r RunResult) Survived() bool { return !r.Final.Extinct() }

// Run seeds a world from cfg and steps it up to steps times. It stops early
// once the grid holds no live cells, and returns ctx.Err() with the partial
// result if ctx is cancelled.
func Run(ctx context.Context, cfg Config, steps int) (RunResult, error) {
	world := NewWithConfig(cfg)
	world.Reset(0)

	result := RunResult{Seed: cfg.Seed, HerbivoresExtinctAt: -1, CarnivoresExtinctAt: -1}
	observe := func(c Census) {
		result.PeakHerbivores = max(result.PeakHerbivores, c.Herbivores)
		result.PeakCarnivores = max(result.PeakCarnivores, c.Carnivores)
		result.TotalKills += c.Kills
		if c.Herbivores == 0 && result.HerbivoresExtinctAt < 0 {
			result.HerbivoresExtinctAt = c.Generation
		}
		if c.Carnivores == 0 && result.CarnivoresExtinctAt < 0 {
			result.CarnivoresExtinctAt = c.Generation
		}
	}
	observe(world.Census())

	for step := 0; step < steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				result.Final = world.Census()
				return result, err
			}
		}
		world.Step()
		result.StepsSimulated++
		c := world.Census()
		observe(c)
		if c.Herbivores == 0 && c.Carnivores == 0 {
			break
		}
	}
	result.Final = world.Census()
	return result, nil
}
