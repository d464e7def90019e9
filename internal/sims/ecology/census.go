package ecology

// Census summarises one generation: the population after the step and the
// events that produced it.
type Census struct {
	Generation int

	Empty      int
	Herbivores int
	Carnivores int

	HerbivoreBirths       int
	CarnivoreBirths       int
	Kills                 int
	Starved               int
	HerbivoresOvercrowded int
	CarnivoresOvercrowded int
}

// Count returns the population census of g with no event counters.
func Count(g *Grid) Census {
	var c Census
	c.tally(g)
	return c
}

func (c *Census) tally(g *Grid) {
	c.Empty, c.Herbivores, c.Carnivores = 0, 0, 0
	for _, cell := range g.Cells() {
		switch cell.Kind {
		case KindHerbivore:
			c.Herbivores++
		case KindCarnivore:
			c.Carnivores++
		default:
			c.Empty++
		}
	}
}

// Total returns the number of cells counted.
func (c Census) Total() int { return c.Empty + c.Herbivores + c.Carnivores }

// Extinct reports whether either species has died out.
func (c Census) Extinct() bool { return c.Herbivores == 0 || c.Carnivores == 0 }
