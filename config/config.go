// Package config provides configuration loading and access for driving the
// simulation core from a config file rather than hand-built structs. The
// core package itself never reads configuration; this is ambient tooling
// around it.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// SimulationConfig holds all run parameters for driving the three
// integrators plus the neighbor-list tuning they share.
type SimulationConfig struct {
	Brownian  BrownianConfig  `yaml:"brownian"`
	Langevin  LangevinConfig  `yaml:"langevin"`
	Newtonian NewtonianConfig `yaml:"newtonian"`
	Neighbor  NeighborConfig  `yaml:"neighbor"`

	// Derived values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// BrownianConfig holds overdamped Brownian dynamics run parameters,
// mirroring integrator.BrownianConfig.
type BrownianConfig struct {
	Temperature float64 `yaml:"temperature"`
	Timestep    float64 `yaml:"timestep"`
	Spacestep   float64 `yaml:"spacestep"`
	Steps       int     `yaml:"steps"`
	Seed        uint64  `yaml:"seed"`
}

// LangevinConfig holds underdamped Langevin dynamics run parameters,
// mirroring integrator.LangevinConfig.
type LangevinConfig struct {
	Temperature float64 `yaml:"temperature"`
	Timestep    float64 `yaml:"timestep"`
	Steps       int     `yaml:"steps"`
	Seed        uint64  `yaml:"seed"`
}

// NewtonianConfig holds deterministic velocity-Verlet run parameters,
// mirroring integrator.NewtonianConfig.
type NewtonianConfig struct {
	Timestep float64 `yaml:"timestep"`
	Steps    int     `yaml:"steps"`
}

// NeighborConfig holds spatial neighbor-list tuning shared by every
// NeighborPairwise force field in a run.
type NeighborConfig struct {
	CutoffDistance float64 `yaml:"cutoff_distance"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	// VerletRadius is 1.5x the neighbor cutoff distance, the minimum of
	// the neighbor list's rebuild-cost function (spec.md 4.6).
	VerletRadius float64
}

// global holds the loaded configuration.
var global *SimulationConfig

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *SimulationConfig {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*SimulationConfig, error) {
	cfg := &SimulationConfig{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *SimulationConfig) computeDerived() {
	c.Derived.VerletRadius = 1.5 * c.Neighbor.CutoffDistance
}
