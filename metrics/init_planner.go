package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPlannerMetrics() {
	r.PlansTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pedroute_plans_total",
			Help: "Coarse route plans by navigation mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	r.BacktracksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pedroute_backtracks_total",
			Help: "Gateway pairs discarded by backtracking",
		},
	)

	r.FallbacksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pedroute_fallbacks_total",
			Help: "Plans closed by appending the destination directly",
		},
	)

	r.SubGoalsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pedroute_subgoals_total",
			Help: "Barrier sub-goals inserted into coarse plans",
		},
	)

	r.GatewayCandidates = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pedroute_gateway_candidates",
			Help:    "Candidate gateways evaluated per scorer call",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
	)

	r.PlanDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pedroute_plan_duration_seconds",
			Help:    "Wall time of one coarse plan",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)
}
