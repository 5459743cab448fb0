package config

import (
	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/gateway"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
	"github.com/katalvlaran/pedroute/planner"
)

// PlannerOptions translates the planner and barrier sections into
// planner options. log and reg may be nil.
func (c *Config) PlannerOptions(log logging.Logger, reg *metrics.Registry) []planner.Option {
	opts := []planner.Option{
		planner.WithScorerOptions(
			gateway.WithDirectionTolerance(c.Planner.DirectionTolerance),
			gateway.WithFallbackCone(c.Planner.FallbackCone),
			gateway.WithWorkers(c.Planner.Workers),
			gateway.WithParallelThreshold(c.Planner.ParallelThreshold),
		),
		planner.WithNavigatorOptions(
			barrier.WithCone(c.Barriers.Cone),
			barrier.WithPreferredTypes(c.Barriers.PreferredTypes...),
		),
		planner.WithLogger(log),
	}
	if reg != nil {
		opts = append(opts, planner.WithMetrics(reg))
	}
	if c.Planner.ReachabilityCheck {
		opts = append(opts, planner.WithReachabilityCheck())
	}

	return opts
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Log.Level)
}
