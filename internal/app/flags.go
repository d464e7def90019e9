package app

import (
	"flag"
	"strconv"

	"ecosim/internal/sims/ecology"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the hosts.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	Width      int
	Height     int
	Mode       string
	ConfigFile string
	HUDWidth   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := ecology.DefaultConfig()
	return &Config{
		Sim:      "ecology",
		Scale:    1,
		TPS:      60,
		Seed:     d.Seed,
		Width:    d.Width,
		Height:   d.Height,
		HUDWidth: 260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.StringVar(&c.Mode, "mode", c.Mode, "update mode: inplace or buffered (default from sim)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file; flags set explicitly override it")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// SimOptions merges the config file, if any, with explicitly set flags into
// the string map sim factories accept.
func (c *Config) SimOptions(fs *flag.FlagSet) (map[string]string, error) {
	base := ecology.DefaultConfig()
	if c.ConfigFile != "" {
		loaded, err := ecology.LoadConfig(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	opts := base.ToMap()
	if c.ConfigFile == "" {
		opts["w"], opts["h"] = strconv.Itoa(c.Width), strconv.Itoa(c.Height)
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}

	var modeErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w", "h", "seed":
			opts[f.Name] = f.Value.String()
		case "mode":
			if _, err := ecology.ParseMode(c.Mode); err != nil {
				modeErr = errors.Wrap(err, "invalid -mode")
				return
			}
			opts["mode"] = c.Mode
		}
	})
	if modeErr != nil {
		return nil, modeErr
	}
	return opts, nil
}
