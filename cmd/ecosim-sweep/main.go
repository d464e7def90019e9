package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"ecosim/internal/sims/ecology"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return errors.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 2000, "generations to simulate per seed")
	seeds := flag.Int("seeds", 16, "number of seeds to run")
	firstSeed := flag.Int64("first-seed", 1, "seed of the first run; later runs count up")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent runs")
	configFile := flag.String("config", "", "JSON config file used as the base")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form, e.g. w=200 or mode=buffered (repeatable)")
	flag.Parse()

	base, err := baseConfig(*configFile, overrides)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds on %dx%d (%s, %d workers, %d steps)\n",
		*seeds, base.Width, base.Height, base.Mode, *workers, *steps)

	start := time.Now()
	results, err := sweep(ctx, base, *firstSeed, *seeds, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep aborted: %v", err)
	}
	report(results, time.Since(start))
}

func baseConfig(path string, overrides kvList) (ecology.Config, error) {
	cfg := ecology.DefaultConfig()
	cfg.Width, cfg.Height = 200, 160
	if path != "" {
		loaded, err := ecology.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	for _, kv := range overrides {
		key, value, _ := strings.Cut(kv, "=")
		if err := cfg.Set(key, value); err != nil {
			return cfg, errors.Wrap(err, "-set")
		}
	}
	return cfg, nil
}

func sweep(ctx context.Context, base ecology.Config, firstSeed int64, seeds, steps, workers int) ([]ecology.RunResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]ecology.RunResult, seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < seeds; i++ {
		cfg := base
		cfg.Seed = firstSeed + int64(i)
		g.Go(func() error {
			res, err := ecology.Run(ctx, cfg, steps)
			if err != nil {
				return errors.Wrapf(err, "seed %d", cfg.Seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func report(results []ecology.RunResult, elapsed time.Duration) {
	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })

	survived := 0
	for _, res := range results {
		if res.Survived() {
			survived++
		}
		fmt.Printf("seed=%d steps=%d herb=%d carn=%d peakHerb=%d peakCarn=%d kills=%d herbExtinct=%s carnExtinct=%s\n",
			res.Seed, res.StepsSimulated, res.Final.Herbivores, res.Final.Carnivores,
			res.PeakHerbivores, res.PeakCarnivores, res.TotalKills,
			extinction(res.HerbivoresExtinctAt), extinction(res.CarnivoresExtinctAt))
	}
	fmt.Printf("\n%d/%d runs kept both species alive (elapsed %s)\n", survived, len(results), elapsed.Round(time.Millisecond))
}

func extinction(gen int) string {
	if gen < 0 {
		return "-"
	}
	return fmt.Sprint(gen)
}
