package term

import (
	"strings"
	"testing"

	"ecosim/internal/sims/ecology"

	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T, world *ecology.World) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("expected simulation screen to initialise, got %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(10, 4)
	return New(screen, world, 60, 1), screen
}

func TestDrawProjectsCellColors(t *testing.T) {
	world := ecology.New(3, 2)
	world.Set(0, 0, ecology.Carnivore(100))
	world.Set(1, 1, ecology.Herbivore(40))
	host, screen := newTestHost(t, world)

	host.Draw()

	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(100, 0, 0) {
		t.Fatalf("expected carnivore background, got %v", bg)
	}
	_, _, style, _ = screen.GetContent(1, 1)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0, 40, 0) {
		t.Fatalf("expected herbivore background, got %v", bg)
	}

	var status strings.Builder
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, 3)
		status.WriteRune(r)
	}
	if !strings.HasPrefix(status.String(), "ecology") {
		t.Fatalf("expected status line on the last row, got %q", status.String())
	}
}

func TestHandleKeyPauseAndStep(t *testing.T) {
	world := ecology.New(3, 3)
	world.Set(1, 1, ecology.Herbivore(30))
	host, _ := newTestHost(t, world)

	if host.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space must not quit")
	}
	if !host.Paused() {
		t.Fatal("expected space to pause")
	}
	if host.Tick() {
		t.Fatal("expected no step while paused")
	}

	host.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !host.Tick() {
		t.Fatal("expected a single step while paused")
	}
	if c, _ := world.At(1, 1); c != ecology.Herbivore(40) {
		t.Fatalf("expected herbivore to grow once, got %v", c)
	}
	if host.Tick() {
		t.Fatal("expected single step to be consumed")
	}

	if !host.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("expected q to quit")
	}
	if !host.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("expected escape to quit")
	}
}
