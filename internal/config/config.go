// Package config loads and saves pbfsim run configuration as YAML. In
// the CLI's run command a config file, when given, replaces a named
// preset, which in turn replaces the --dt/--time flag values; each layer
// replaces the whole configuration rather than merging field by field.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pbf/internal/pbf"
)

const (
	DefaultDt       = 1.0 / 200
	DefaultDuration = 5.0
	DefaultScene    = 0
)

// Config is the on-disk shape of a pbfsim run. Tunables use pointers
// so a config file can override a subset of pbf.DefaultTunables()
// without zeroing the rest.
type Config struct {
	Scene    int       `yaml:"scene"`
	Dt       float64   `yaml:"dt"`
	Duration float64   `yaml:"duration"`
	Seed     int64     `yaml:"seed"`
	Tunables *Tunables `yaml:"tunables,omitempty"`
}

// Tunables mirrors pbf.Tunables with every field optional, so a YAML
// file only needs to name what it overrides.
type Tunables struct {
	SolverIterations *int     `yaml:"solver_iterations,omitempty"`
	Relaxation       *float64 `yaml:"relaxation,omitempty"`
	Damping          *float64 `yaml:"damping,omitempty"`
	ArtificialK      *float64 `yaml:"artificial_k,omitempty"`
	ArtificialN      *int     `yaml:"artificial_n,omitempty"`
	GravityY         *float64 `yaml:"gravity_y,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:    DefaultScene,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply merges the config's tunable overrides onto the simulator's
// base tunables (already pbf.DefaultTunables() by construction).
func (c *Config) Apply(base pbf.Tunables) pbf.Tunables {
	if c.Tunables == nil {
		return base
	}
	t := c.Tunables
	if t.SolverIterations != nil {
		base.SolverIterations = *t.SolverIterations
	}
	if t.Relaxation != nil {
		base.Relaxation = *t.Relaxation
	}
	if t.Damping != nil {
		base.Damping = *t.Damping
	}
	if t.ArtificialK != nil {
		base.ArtificialK = *t.ArtificialK
	}
	if t.ArtificialN != nil {
		base.ArtificialN = *t.ArtificialN
	}
	if t.GravityY != nil {
		base.Gravity.Y = *t.GravityY
	}
	return base
}
