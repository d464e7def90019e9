package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ecosim/internal/app"
	"ecosim/internal/core"
	_ "ecosim/internal/sims/ecology"
	"ecosim/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 120, 40
	cfg.TPS = 15
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

	screen, err := term.Open()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.New(screen, sim, cfg.TPS, 0).Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
