// Package metrics exposes Prometheus instrumentation for planning runs.
//
// A Registry owns a private prometheus.Registry, so tests and embedded
// planners never collide on the global default registerer. Every recorder
// method is safe on a nil *Registry, which is what planners hold when no
// metrics were configured.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of pedroute_plans_total.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Mode label values of pedroute_plans_total.
const (
	ModeRegions  = "regions"
	ModeBarriers = "barriers"
)

// Registry holds all pedroute metrics.
type Registry struct {
	// Planner
	PlansTotal        *prometheus.CounterVec
	BacktracksTotal   prometheus.Counter
	FallbacksTotal    prometheus.Counter
	SubGoalsTotal     prometheus.Counter
	GatewayCandidates prometheus.Histogram
	PlanDuration      prometheus.Histogram

	// Simulation
	TripsTotal        *prometheus.CounterVec
	RoutesStoredTotal prometheus.Counter
	RunDuration       prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry returns a Registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initPlannerMetrics()
	r.initSimulationMetrics()

	return r
}

// Prometheus returns the underlying registry, e.g. for promhttp or testutil.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}
