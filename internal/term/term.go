// Package term hosts a simulation in a terminal using tcell. One terminal
// cell shows one grid cell; grids larger than the terminal are clipped to the
// top-left viewport.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecosim/internal/core"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Host drives a sim at a fixed tick rate and redraws after every tick.
type Host struct {
	screen tcell.Screen
	sim    core.Sim
	step   *core.FixedStep
	seed   int64

	paused   bool
	tickOnce bool
}

// New returns a host for sim on an initialised screen.
func New(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Host {
	return &Host{screen: screen, sim: sim, step: core.NewFixedStep(tps), seed: seed}
}

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Run processes input and advances the sim until ctx is done or the user
// quits with Escape or q.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.step.Interval())
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if h.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				h.screen.Sync()
			case nil:
				return nil
			}
			h.Draw()
		case <-ticker.C:
			if h.Tick() {
				h.Draw()
			}
		}
	}
}

// Tick advances the sim when the fixed step is due, or when a single step
// was requested while paused. It reports whether the sim advanced.
func (h *Host) Tick() bool {
	due := h.step.ShouldStep()
	if h.paused && !h.tickOnce {
		return false
	}
	if !due && !h.tickOnce {
		return false
	}
	h.sim.Step()
	h.tickOnce = false
	return true
}

// HandleKey applies a key press and reports whether the host should exit.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		h.paused = false
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
	case 'n':
		h.tickOnce = true
	case 'r':
		h.sim.Reset(h.seed)
	case 's':
		h.seed = time.Now().UnixNano()
		h.sim.Reset(h.seed)
	}
	return false
}

// Paused reports whether stepping is suspended.
func (h *Host) Paused() bool { return h.paused }

// Draw paints the visible part of the grid and a status line on the last row.
func (h *Host) Draw() {
	sw, sh := h.screen.Size()
	size := h.sim.Size()
	rows := min(size.H, sh-1)
	cols := min(size.W, sw)
	colors := h.sim.Colors()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := colors[y*size.W+x]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			h.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	if sh > 0 {
		h.drawStatus(sh-1, sw)
	}
	h.screen.Show()
}

func (h *Host) drawStatus(row, width int) {
	line := h.statusLine()
	if len(line) < width {
		line += strings.Repeat(" ", width-len(line))
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x, r := range []rune(line) {
		if x >= width {
			break
		}
		h.screen.SetContent(x, row, r, nil, style)
	}
}

func (h *Host) statusLine() string {
	var b strings.Builder
	b.WriteString(h.sim.Name())
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"generation", "herbivores", "carnivores"} {
			if p, ok := snap.Lookup(key); ok {
				fmt.Fprintf(&b, " | %s %s", p.Label, p.Value)
			}
		}
	}
	if h.paused {
		b.WriteString(" | paused")
	}
	b.WriteString(" | space pause, n step, r reset, q quit")
	return b.String()
}
