package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/spantree/entropy"
)

// Config holds analysis defaults loadable from a TOML file. Explicitly
// set command-line flags always win over file values.
//
// Example:
//
//	workers        = 4
//	normalization  = "per-node"
//	progress_every = 10000
type Config struct {
	Workers       int    `toml:"workers"`
	Normalization string `toml:"normalization"`
	ProgressEvery int    `toml:"progress_every"`
}

// DefaultConfig returns the built-in defaults used when no config file
// is given: engine-side worker default (0 = all cores), per-node
// normalization, progress every 10k eliminations.
func DefaultConfig() Config {
	return Config{
		Workers:       0,
		Normalization: entropy.NormPerNode.String(),
		ProgressEvery: 10000,
	}
}

// LoadConfig reads a TOML config file over the built-in defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("progress_every must be positive, got %d", c.ProgressEvery)
	}
	if _, err := c.normalization(); err != nil {
		return err
	}

	return nil
}

// normalization maps the config string onto the entropy mode.
func (c Config) normalization() (entropy.Normalization, error) {
	switch c.Normalization {
	case "", entropy.NormPerNode.String():
		return entropy.NormPerNode, nil
	case entropy.NormPerEdge.String():
		return entropy.NormPerEdge, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q (want %q or %q)",
			c.Normalization, entropy.NormPerNode.String(), entropy.NormPerEdge.String())
	}
}
