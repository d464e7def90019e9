package ecology

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the Ecology simulation dimensions and update policy.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`

	Mode   Mode   `json:"mode"`
	Compat Compat `json:"compat"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 640,
		Seed:   1337,
		Mode:   ModeInPlace,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["free_herbivore_down_birth"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Compat.FreeHerbivoreDownBirth = parsed
		}
	}
	return c
}

// Set parses value for the FromMap key and applies it to c. Unlike FromMap
// it rejects unknown keys and malformed values.
func (c *Config) Set(key, value string) error {
	switch key {
	case "w", "h":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return errors.Errorf("invalid value %q for %s", value, key)
		}
		if key == "w" {
			c.Width = n
		} else {
			c.Height = n
		}
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errors.Errorf("invalid value %q for %s", value, key)
		}
		c.Seed = n
	case "mode":
		m, err := ParseMode(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q for %s", value, key)
		}
		c.Mode = m
	case "free_herbivore_down_birth":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid value %q for %s", value, key)
		}
		c.Compat.FreeHerbivoreDownBirth = b
	default:
		return errors.Errorf("unknown config key %q", key)
	}
	return nil
}

// LoadConfig reads a JSON config file over the defaults.
func LoadConfig(filename string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", filename)
	}
	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", filename)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return c, errors.Errorf("[LoadConfig] invalid grid size %dx%d in %s", c.Width, c.Height, filename)
	}
	return c, nil
}

// ToMap renders the config as flag-style pairs accepted by FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":                         strconv.Itoa(c.Width),
		"h":                         strconv.Itoa(c.Height),
		"seed":                      strconv.FormatInt(c.Seed, 10),
		"mode":                      c.Mode.String(),
		"free_herbivore_down_birth": strconv.FormatBool(c.Compat.FreeHerbivoreDownBirth),
	}
}
