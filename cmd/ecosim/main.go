//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ecosim/internal/app"
	"ecosim/internal/core"
	_ "ecosim/internal/sims/ecology"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	opts, err := cfg.SimOptions(flag.CommandLine)
	if err != nil {
		log.Fatalf("loading config: %+v", err)
	}

	sim := factory(opts)
	sim.Reset(0)

	game := app.New(sim, cfg.Scale, 0, cfg.HUDWidth)
	size := sim.Size()
	log.Printf("running %s on a %dx%d grid at %d tps", sim.Name(), size.W, size.H, cfg.TPS)

	ebiten.SetWindowTitle("ecosim - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
