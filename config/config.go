// Package config loads pedroute settings from YAML.
//
// Config file locations (priority order):
//  1. $PEDROUTE_CONFIG
//  2. ./pedroute.yaml
//  3. $XDG_CONFIG_HOME/pedroute/config.yaml
//  4. ~/.config/pedroute/config.yaml
//
// Missing values take the defaults of DefaultConfig; the result is then
// validated.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/gateway"
)

// Defaults not owned by another package.
const (
	DefaultTrips       = 100
	DefaultWorkers     = 4
	DefaultMinDistance = 100.0
	DefaultMaxDistance = 2000.0
	DefaultStorePath   = "./pedroute.db"
	DefaultLogLevel    = "info"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes YAML, fills defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	g := gateway.DefaultOptions()
	n := barrier.DefaultNavigatorOptions()

	return &Config{
		Version: 1,
		Planner: PlannerConfig{
			DirectionTolerance: g.DirectionTolerance,
			FallbackCone:       g.FallbackCone,
			Workers:            g.Workers,
			ParallelThreshold:  g.ParallelThreshold,
		},
		Barriers: BarrierConfig{
			Cone:           n.Cone,
			PreferredTypes: n.PreferredTypes,
		},
		Simulation: SimulationConfig{
			Trips:        DefaultTrips,
			Workers:      DefaultWorkers,
			Seed:         1,
			MinDistance:  DefaultMinDistance,
			MaxDistance:  DefaultMaxDistance,
			RouteChoices: agent.RouteChoices(),
		},
		Store: StoreConfig{Path: DefaultStorePath},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Planner.DirectionTolerance == 0 {
		c.Planner.DirectionTolerance = d.Planner.DirectionTolerance
	}
	if c.Planner.FallbackCone == 0 {
		c.Planner.FallbackCone = d.Planner.FallbackCone
	}
	if c.Planner.Workers == 0 {
		c.Planner.Workers = d.Planner.Workers
	}
	if c.Planner.ParallelThreshold == 0 {
		c.Planner.ParallelThreshold = d.Planner.ParallelThreshold
	}
	if c.Barriers.Cone == 0 {
		c.Barriers.Cone = d.Barriers.Cone
	}
	if c.Barriers.PreferredTypes == nil {
		c.Barriers.PreferredTypes = d.Barriers.PreferredTypes
	}
	if c.Simulation.Trips == 0 {
		c.Simulation.Trips = d.Simulation.Trips
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = d.Simulation.Workers
	}
	if c.Simulation.MaxDistance == 0 {
		c.Simulation.MaxDistance = d.Simulation.MaxDistance
		if c.Simulation.MinDistance == 0 {
			c.Simulation.MinDistance = d.Simulation.MinDistance
		}
	}
	if len(c.Simulation.RouteChoices) == 0 {
		c.Simulation.RouteChoices = d.Simulation.RouteChoices
	}
	if c.Store.Path == "" {
		c.Store.Path = d.Store.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
