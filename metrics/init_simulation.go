package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.TripsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pedroute_trips_total",
			Help: "Simulated trips by outcome",
		},
		[]string{"outcome"}, // planned, skipped, failed
	)

	r.RoutesStoredTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pedroute_routes_stored_total",
			Help: "Routes persisted to the route store",
		},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pedroute_run_duration_seconds",
			Help:    "Wall time of one simulation run",
			Buckets: prometheus.DefBuckets,
		},
	)
}
