package ecology

import "ecosim/internal/core"

// Grid is the world grid of cells.
type Grid = core.Grid[Cell]

// NewGrid allocates an empty w×h grid.
func NewGrid(w, h int) *Grid { return core.NewGrid[Cell](w, h) }

// Stepper applies the birth, feeding and starvation rules to a grid, one
// generation per call. A Stepper is not safe for concurrent use.
type Stepper struct {
	Rules  Rules
	Mode   Mode
	Compat Compat

	frozen *Grid
}

// NewStepper returns a stepper using the default rules.
func NewStepper(mode Mode, compat Compat) *Stepper {
	return &Stepper{Rules: DefaultRules(), Mode: mode, Compat: compat}
}

// Step advances g by one generation, visiting cells in row-major order, and
// returns the census of the resulting grid.
func (s *Stepper) Step(g *Grid) Census {
	read := g
	if s.Mode == ModeBuffered {
		if s.frozen == nil || !s.frozen.CopyFrom(g) {
			s.frozen = NewGrid(g.W, g.H)
			s.frozen.CopyFrom(g)
		}
		read = s.frozen
	}

	var c Census
	rc, wc := read.Cells(), g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			cell := rc[i]
			// Eaten earlier in this generation.
			if wc[i].Kind != cell.Kind {
				continue
			}
			switch cell.Kind {
			case KindCarnivore:
				s.stepCarnivore(read, g, x, y, cell, &c)
			case KindHerbivore:
				s.stepHerbivore(read, g, x, y, cell, &c)
			}
		}
	}
	c.tally(g)
	return c
}

func (s *Stepper) stepCarnivore(read, write *Grid, x, y int, cell Cell, c *Census) {
	cells := write.Cells()
	i := write.Index(x, y)
	v := int(cell.Vitality)

	if v >= s.Rules.BirthReq {
		if n, _, ok := findNeighbor(read, write, x, y, KindEmpty); ok {
			cells[n] = Carnivore(clampVitality(s.Rules.InitialLife))
			cell = cell.withVitality(v - s.Rules.BirthCost)
			cells[i] = cell
			c.CarnivoreBirths++
		} else if s.Rules.crowded(KindCarnivore, v) {
			cells[i] = Empty()
			c.CarnivoresOvercrowded++
			return
		}
	}

	if n, _, ok := findNeighbor(read, write, x, y, KindHerbivore); ok {
		cells[n] = Empty()
		cell = cell.withVitality(int(cell.Vitality) + s.Rules.LifeAddition)
		c.Kills++
	} else {
		cell = cell.withVitality(int(cell.Vitality) - s.Rules.LifeAddition)
		if cell.Kind == KindEmpty {
			c.Starved++
		}
	}
	cells[i] = cell
}

func (s *Stepper) stepHerbivore(read, write *Grid, x, y int, cell Cell, c *Census) {
	cells := write.Cells()
	i := write.Index(x, y)
	v := int(cell.Vitality)

	if v >= s.Rules.BirthReq {
		if n, arm, ok := findNeighbor(read, write, x, y, KindEmpty); ok {
			cells[n] = Herbivore(clampVitality(s.Rules.InitialLife))
			if !(s.Compat.FreeHerbivoreDownBirth && arm == downNeighbor) {
				cell = cell.withVitality(v - s.Rules.BirthCost)
			}
			c.HerbivoreBirths++
		} else if s.Rules.crowded(KindHerbivore, v) {
			cells[i] = Empty()
			c.HerbivoresOvercrowded++
			return
		}
	}

	cells[i] = cell.withVitality(int(cell.Vitality) + s.Rules.LifeAddition)
}

// findNeighbor scans the orthogonal neighbors of (x, y) in tie-break order and
// returns the index and arm of the first one holding want in both the read
// and the write grid. With a single grid this is simply the current state;
// with a frozen copy a target must exist in the old generation and not yet
// be claimed in the new one.
func findNeighbor(read, write *Grid, x, y int, want Kind) (int, int, bool) {
	rc, wc := read.Cells(), write.Cells()
	for arm, off := range neighborOrder {
		nx, ny := x+off.dx, y+off.dy
		if !write.InBounds(nx, ny) {
			continue
		}
		n := write.Index(nx, ny)
		if rc[n].Kind == want && wc[n].Kind == want {
			return n, arm, true
		}
	}
	return 0, 0, false
}
