package ecology

import (
	"fmt"
	"testing"
)

type placed struct {
	x, y int
	cell Cell
}

func gridWith(w, h int, cells ...placed) *Grid {
	g := NewGrid(w, h)
	for _, p := range cells {
		g.Set(p.x, p.y, p.cell)
	}
	return g
}

func cellAt(t *testing.T, g *Grid, x, y int) Cell {
	t.Helper()
	c, ok := g.At(x, y)
	if !ok {
		t.Fatalf("(%d,%d) is off-grid", x, y)
	}
	return c
}

func expectCell(t *testing.T, g *Grid, x, y int, want Cell) {
	t.Helper()
	if got := cellAt(t, g, x, y); got != want {
		t.Fatalf("expected (%d,%d) to be %s/%d, got %s/%d", x, y, want.Kind, want.Vitality, got.Kind, got.Vitality)
	}
}

var allModes = []Mode{ModeInPlace, ModeBuffered}

func forEachMode(t *testing.T, fn func(t *testing.T, s *Stepper)) {
	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			fn(t, NewStepper(mode, Compat{}))
		})
	}
}

func TestCarnivoreBirthPrefersLeftOverUp(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3, placed{1, 1, Carnivore(160)})

		c := s.Step(g)

		expectCell(t, g, 0, 1, Carnivore(InitialLife))
		expectCell(t, g, 1, 0, Empty())
		expectCell(t, g, 2, 1, Empty())
		expectCell(t, g, 1, 2, Empty())
		// 160 - birth cost, then starvation.
		expectCell(t, g, 1, 1, Carnivore(50))
		if c.CarnivoreBirths != 1 {
			t.Fatalf("expected exactly one birth, got %d", c.CarnivoreBirths)
		}
	})
}

func TestBirthSkipsOffGridNeighbors(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3, placed{0, 1, Carnivore(160)})

		s.Step(g)

		expectCell(t, g, 0, 0, Carnivore(InitialLife))
		expectCell(t, g, 1, 1, Empty())
		expectCell(t, g, 0, 2, Empty())
	})
}

func TestCarnivoreFeedsOnAdjacentHerbivore(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(2, 1,
			placed{0, 0, Carnivore(100)},
			placed{1, 0, Herbivore(30)},
		)

		c := s.Step(g)

		expectCell(t, g, 0, 0, Carnivore(110))
		expectCell(t, g, 1, 0, Empty())
		if c.Kills != 1 || c.CarnivoreBirths != 0 {
			t.Fatalf("expected one kill and no births, got kills=%d births=%d", c.Kills, c.CarnivoreBirths)
		}
	})
}

func TestHighVitalityCarnivoreNeverFeedsPastBirth(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		// Boxed in: overcrowding wins before feeding.
		g := gridWith(3, 1,
			placed{0, 0, Herbivore(30)},
			placed{1, 0, Carnivore(250)},
			placed{2, 0, Carnivore(10)},
		)
		c := s.Step(g)
		expectCell(t, g, 1, 0, Empty())
		expectCell(t, g, 0, 0, Herbivore(40))
		if c.Kills != 0 || c.CarnivoresOvercrowded != 1 {
			t.Fatalf("expected overcrowding death without a kill, got %+v", c)
		}

		// With room, the birth cost lands before the feed.
		g = gridWith(2, 2,
			placed{0, 0, Herbivore(30)},
			placed{1, 0, Carnivore(250)},
		)
		s.Step(g)
		expectCell(t, g, 1, 0, Carnivore(160))
		expectCell(t, g, 0, 0, Empty())
		if got := cellAt(t, g, 1, 1); got.Kind != KindCarnivore {
			t.Fatalf("expected a newborn carnivore below the parent, got %s", got.Kind)
		}
	})
}

func TestCarnivoreFeedsWhenSurrounded(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3,
			placed{1, 1, Carnivore(100)},
			placed{0, 1, Carnivore(50)},
			placed{1, 0, Carnivore(50)},
			placed{1, 2, Carnivore(50)},
			placed{2, 1, Herbivore(30)},
		)

		s.Step(g)

		expectCell(t, g, 1, 1, Carnivore(110))
		expectCell(t, g, 2, 1, Empty())
		expectCell(t, g, 1, 0, Carnivore(40))
	})
}

func TestCarnivoreStarves(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3, placed{1, 1, Carnivore(60)})

		c := s.Step(g)

		expectCell(t, g, 1, 1, Carnivore(50))
		if c.Starved != 0 {
			t.Fatalf("expected no starvation deaths, got %d", c.Starved)
		}
		if c.Carnivores != 1 || c.Empty != 8 {
			t.Fatalf("expected 1 carnivore and 8 empty, got %d and %d", c.Carnivores, c.Empty)
		}
	})
}

func TestStarvationClampsAtZero(t *testing.T) {
	for _, v := range []uint8{10, 5, 1} {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			g := gridWith(1, 1, placed{0, 0, Carnivore(v)})

			c := NewStepper(ModeInPlace, Compat{}).Step(g)

			expectCell(t, g, 0, 0, Empty())
			if c.Starved != 1 {
				t.Fatalf("expected one starvation death, got %d", c.Starved)
			}
		})
	}
}

func TestHerbivoreGrowsPassively(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3, placed{1, 1, Herbivore(30)})

		s.Step(g)

		expectCell(t, g, 1, 1, Herbivore(40))
	})
}

func TestHerbivoreBirthChargesParentBeforeGrowth(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3, placed{1, 1, Herbivore(150)})

		c := s.Step(g)

		expectCell(t, g, 0, 1, Herbivore(InitialLife))
		expectCell(t, g, 1, 1, Herbivore(60))
		if c.HerbivoreBirths != 1 {
			t.Fatalf("expected one herbivore birth, got %d", c.HerbivoreBirths)
		}
	})
}

func TestCarnivoreOvercrowdingDeath(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 3,
			placed{1, 1, Carnivore(220)},
			placed{0, 1, Carnivore(50)},
			placed{1, 0, Carnivore(50)},
			placed{2, 1, Carnivore(50)},
			placed{1, 2, Carnivore(50)},
		)

		c := s.Step(g)

		expectCell(t, g, 1, 1, Empty())
		if c.CarnivoresOvercrowded != 1 {
			t.Fatalf("expected one overcrowding death, got %d", c.CarnivoresOvercrowded)
		}
	})
}

func TestCarnivoreBelowOverpopulationSurvivesCrowding(t *testing.T) {
	g := gridWith(3, 3,
		placed{1, 1, Carnivore(219)},
		placed{0, 1, Carnivore(50)},
		placed{1, 0, Carnivore(50)},
		placed{2, 1, Carnivore(50)},
		placed{1, 2, Carnivore(50)},
	)

	NewStepper(ModeInPlace, Compat{}).Step(g)

	expectCell(t, g, 1, 1, Carnivore(209))
}

func TestHerbivoreOvercrowdingIsStrict(t *testing.T) {
	surrounded := func(center uint8) *Grid {
		return gridWith(3, 3,
			placed{1, 1, Herbivore(center)},
			placed{0, 1, Herbivore(50)},
			placed{1, 0, Herbivore(50)},
			placed{2, 1, Herbivore(50)},
			placed{1, 2, Herbivore(50)},
		)
	}

	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := surrounded(220)
		s.Step(g)
		expectCell(t, g, 1, 1, Herbivore(230))

		g = surrounded(221)
		c := s.Step(g)
		expectCell(t, g, 1, 1, Empty())
		if c.HerbivoresOvercrowded != 1 {
			t.Fatalf("expected one herbivore overcrowding death, got %d", c.HerbivoresOvercrowded)
		}
	})
}

func TestIsolatedCellsAtTheEdge(t *testing.T) {
	g := gridWith(1, 1, placed{0, 0, Herbivore(150)})
	NewStepper(ModeInPlace, Compat{}).Step(g)
	expectCell(t, g, 0, 0, Herbivore(160))

	g = gridWith(1, 1, placed{0, 0, Carnivore(230)})
	NewStepper(ModeInPlace, Compat{}).Step(g)
	expectCell(t, g, 0, 0, Empty())
}

// downOnly leaves only the down neighbor of (1,1) free.
func downOnly(center uint8) *Grid {
	return gridWith(3, 3,
		placed{1, 1, Herbivore(center)},
		placed{0, 1, Herbivore(50)},
		placed{1, 0, Herbivore(50)},
		placed{2, 1, Herbivore(50)},
	)
}

func TestFreeHerbivoreDownBirth(t *testing.T) {
	g := downOnly(150)
	NewStepper(ModeInPlace, Compat{}).Step(g)
	expectCell(t, g, 1, 1, Herbivore(60))
	if got := cellAt(t, g, 1, 2); got.Kind != KindHerbivore {
		t.Fatalf("expected a herbivore born below, got %s", got.Kind)
	}

	g = downOnly(150)
	NewStepper(ModeInPlace, Compat{FreeHerbivoreDownBirth: true}).Step(g)
	expectCell(t, g, 1, 1, Herbivore(160))

	g = downOnly(250)
	NewStepper(ModeInPlace, Compat{FreeHerbivoreDownBirth: true}).Step(g)
	expectCell(t, g, 1, 1, Herbivore(255))

	// Other arms still charge the parent.
	g = gridWith(3, 3, placed{1, 1, Herbivore(150)})
	NewStepper(ModeInPlace, Compat{FreeHerbivoreDownBirth: true}).Step(g)
	expectCell(t, g, 1, 1, Herbivore(60))
}

func TestNewbornsActOnlyInPlace(t *testing.T) {
	g := gridWith(2, 1, placed{0, 0, Carnivore(160)})
	NewStepper(ModeInPlace, Compat{}).Step(g)
	expectCell(t, g, 0, 0, Carnivore(50))
	expectCell(t, g, 1, 0, Carnivore(40))

	g = gridWith(2, 1, placed{0, 0, Carnivore(160)})
	NewStepper(ModeBuffered, Compat{}).Step(g)
	expectCell(t, g, 0, 0, Carnivore(50))
	expectCell(t, g, 1, 0, Carnivore(InitialLife))
}

func TestContestedHerbivoreIsEatenOnce(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		g := gridWith(3, 1,
			placed{0, 0, Carnivore(100)},
			placed{1, 0, Herbivore(30)},
			placed{2, 0, Carnivore(100)},
		)

		c := s.Step(g)

		expectCell(t, g, 0, 0, Carnivore(110))
		expectCell(t, g, 1, 0, Empty())
		expectCell(t, g, 2, 0, Carnivore(90))
		if c.Kills != 1 {
			t.Fatalf("expected a single kill, got %d", c.Kills)
		}
	})
}

func TestCellsFreedThisGenerationOnlyReusedInPlace(t *testing.T) {
	setup := func() *Grid {
		return gridWith(3, 1,
			placed{0, 0, Carnivore(100)},
			placed{1, 0, Herbivore(30)},
			placed{2, 0, Herbivore(150)},
		)
	}

	g := setup()
	NewStepper(ModeInPlace, Compat{}).Step(g)
	expectCell(t, g, 1, 0, Herbivore(InitialLife))
	expectCell(t, g, 2, 0, Herbivore(60))

	g = setup()
	NewStepper(ModeBuffered, Compat{}).Step(g)
	expectCell(t, g, 1, 0, Empty())
	expectCell(t, g, 2, 0, Herbivore(160))
}

func TestInvariantsHoldOverManyGenerations(t *testing.T) {
	forEachMode(t, func(t *testing.T, s *Stepper) {
		w := NewWithConfig(Config{Width: 48, Height: 40, Seed: 42, Mode: s.Mode})
		w.Reset(0)

		for gen := 1; gen <= 300; gen++ {
			w.Step()
			c := w.Census()
			if c.Total() != 48*40 {
				t.Fatalf("generation %d: census counts %d cells, expected %d", gen, c.Total(), 48*40)
			}
			colors := w.Colors()
			for i, cell := range w.Grid().Cells() {
				if (cell.Kind == KindEmpty) != (cell.Vitality == 0) {
					t.Fatalf("generation %d: cell %d has kind %s with vitality %d", gen, i, cell.Kind, cell.Vitality)
				}
				if cell.Kind > KindCarnivore {
					t.Fatalf("generation %d: cell %d has invalid kind %d", gen, i, cell.Kind)
				}
				if got := CellFromColor(colors[i]); got != cell {
					t.Fatalf("generation %d: display for cell %d decodes to %v, expected %v", gen, i, got, cell)
				}
			}
		}
	})
}
