package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Trip outcome label values of pedroute_trips_total.
const (
	TripPlanned = "planned"
	TripSkipped = "skipped"
	TripFailed  = "failed"
)

// RecordPlan records one finished plan.
func (r *Registry) RecordPlan(mode, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.PlansTotal.WithLabelValues(mode, outcome).Inc()
	r.PlanDuration.Observe(d.Seconds())
}

// RecordBacktrack counts one backtrack step.
func (r *Registry) RecordBacktrack() {
	if r == nil {
		return
	}
	r.BacktracksTotal.Inc()
}

// RecordFallback counts one root fallback.
func (r *Registry) RecordFallback() {
	if r == nil {
		return
	}
	r.FallbacksTotal.Inc()
}

// RecordSubGoals adds n inserted barrier sub-goals.
func (r *Registry) RecordSubGoals(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.SubGoalsTotal.Add(float64(n))
}

// ObserveCandidates records the number of gateways one scorer call examined.
func (r *Registry) ObserveCandidates(n int) {
	if r == nil {
		return
	}
	r.GatewayCandidates.Observe(float64(n))
}

// RecordTrip counts one simulated trip by outcome.
func (r *Registry) RecordTrip(outcome string) {
	if r == nil {
		return
	}
	r.TripsTotal.WithLabelValues(outcome).Inc()
}

// RecordRoutesStored adds n persisted routes.
func (r *Registry) RecordRoutesStored(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.RoutesStoredTotal.Add(float64(n))
}

// RecordRun observes the duration of one simulation run.
func (r *Registry) RecordRun(d time.Duration) {
	if r == nil {
		return
	}
	r.RunDuration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
