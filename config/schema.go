package config

// Config is the root configuration structure
type Config struct {
	Version    int              `yaml:"version"`
	Planner    PlannerConfig    `yaml:"planner"`
	Barriers   BarrierConfig    `yaml:"barriers"`
	Simulation SimulationConfig `yaml:"simulation"`
	Store      StoreConfig      `yaml:"store"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// PlannerConfig tunes gateway scoring and the sequencer
type PlannerConfig struct {
	DirectionTolerance float64 `yaml:"direction_tolerance" validate:"gt=0,lte=180"`
	FallbackCone       float64 `yaml:"fallback_cone" validate:"gte=0,lte=180"`
	Workers            int     `yaml:"workers" validate:"gte=1"`
	ParallelThreshold  int     `yaml:"parallel_threshold" validate:"gte=1"`
	ReachabilityCheck  bool    `yaml:"reachability_check"`
}

// BarrierConfig tunes the default barrier navigator
type BarrierConfig struct {
	Cone           float64  `yaml:"cone" validate:"gt=0,lte=360"`
	PreferredTypes []string `yaml:"preferred_types" validate:"dive,required"`
}

// SimulationConfig describes a batch of random trips
type SimulationConfig struct {
	Trips        int      `yaml:"trips" validate:"gte=1"`
	Workers      int      `yaml:"workers" validate:"gte=1"`
	Seed         int64    `yaml:"seed"`
	MinDistance  float64  `yaml:"min_distance" validate:"gte=0"`
	MaxDistance  float64  `yaml:"max_distance" validate:"gtfield=MinDistance"`
	RouteChoices []string `yaml:"route_choices" validate:"min=1,dive,routechoice"`
}

// StoreConfig locates the route database
type StoreConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// LogConfig sets the log level
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig sets the Prometheus listen address; empty disables it
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}
