package ecology

import "ecosim/internal/core"

// Seeding weights out of seedWeightTotal; the remainder stays empty.
const (
	carnivoreWeight = 50
	herbivoreWeight = 400
	seedWeightTotal = 1000
)

// Seed overwrites every cell of g with an independent weighted draw: roughly
// 5% carnivores, 40% herbivores and 55% empty. Live cells start at
// InitialLife.
func Seed(g *Grid, rng *core.RNG) {
	cells := g.Cells()
	for i := range cells {
		switch rng.Weighted(seedWeightTotal, carnivoreWeight, herbivoreWeight) {
		case 0:
			cells[i] = Carnivore(InitialLife)
		case 1:
			cells[i] = Herbivore(InitialLife)
		default:
			cells[i] = Empty()
		}
	}
}
