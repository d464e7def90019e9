package ecology

import (
	"image/color"

	"ecosim/internal/core"
)

// World owns the grid of one predator/prey run and adapts it to core.Sim.
type World struct {
	cfg Config

	grid    *Grid
	stepper *Stepper
	display []color.RGBA

	census     Census
	generation int
	seed       int64
}

// New returns an Ecology simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty world configured from the provided options.
// Call Reset to seed it.
func NewWithConfig(cfg Config) *World {
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	w := &World{
		cfg:     cfg,
		grid:    grid,
		stepper: NewStepper(cfg.Mode, cfg.Compat),
		display: make([]color.RGBA, grid.W*grid.H),
		seed:    cfg.Seed,
	}
	w.rebuildDisplay()
	w.census = Count(grid)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string {
	if w.cfg.Mode == ModeBuffered {
		return "ecology-sync"
	}
	return "ecology"
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Colors exposes the current display buffer.
func (w *World) Colors() []color.RGBA { return w.display }

// Grid exposes the live grid. Writes through it are not reflected in Colors
// until the next Step or Reset; use Set for single-cell edits.
func (w *World) Grid() *Grid { return w.grid }

// Census returns the census of the latest generation.
func (w *World) Census() Census { return w.census }

// Generation returns the number of steps since the last Reset.
func (w *World) Generation() int { return w.generation }

// At returns the cell at (x, y); off-grid coordinates report false.
func (w *World) At(x, y int) (Cell, bool) { return w.grid.At(x, y) }

// Set overwrites the cell at (x, y) and its display triple.
func (w *World) Set(x, y int, c Cell) bool {
	if !w.grid.Set(x, y, newCell(c.Kind, c.Vitality)) {
		return false
	}
	i := w.grid.Index(x, y)
	w.display[i] = w.grid.Cells()[i].Color()
	return true
}

// Reset seeds a fresh population. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	Seed(w.grid, core.NewRNG(effective))
	w.generation = 0
	w.census = Count(w.grid)
	w.rebuildDisplay()
}

// Step advances the world by one generation.
func (w *World) Step() {
	c := w.stepper.Step(w.grid)
	w.generation++
	c.Generation = w.generation
	w.census = c
	w.rebuildDisplay()
}

func init() {
	core.Register("ecology", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("ecology-sync", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Mode = ModeBuffered
		return NewWithConfig(c)
	})
}
