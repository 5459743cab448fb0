package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/metrics"
)

func TestNewRegistry_AllRegistered(t *testing.T) {
	r := metrics.NewRegistry()
	require.NotNil(t, r.Prometheus())

	assert.NotNil(t, r.PlansTotal)
	assert.NotNil(t, r.BacktracksTotal)
	assert.NotNil(t, r.GatewayCandidates)
	assert.NotNil(t, r.TripsTotal)
}

func TestRecorders(t *testing.T) {
	r := metrics.NewRegistry()

	r.RecordPlan(metrics.ModeRegions, metrics.OutcomeOK, time.Millisecond)
	r.RecordPlan(metrics.ModeRegions, metrics.OutcomeOK, time.Millisecond)
	r.RecordPlan(metrics.ModeBarriers, metrics.OutcomeFallback, time.Millisecond)
	r.RecordBacktrack()
	r.RecordFallback()
	r.RecordSubGoals(3)
	r.RecordSubGoals(0)
	r.ObserveCandidates(4)
	r.RecordTrip(metrics.TripSkipped)
	r.RecordRoutesStored(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.PlansTotal.WithLabelValues(metrics.ModeRegions, metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.PlansTotal.WithLabelValues(metrics.ModeBarriers, metrics.OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BacktracksTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.FallbacksTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.SubGoalsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TripsTotal.WithLabelValues(metrics.TripSkipped)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RoutesStoredTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(r.GatewayCandidates))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *metrics.Registry
	assert.NotPanics(t, func() {
		r.RecordPlan(metrics.ModeRegions, metrics.OutcomeOK, time.Second)
		r.RecordBacktrack()
		r.RecordFallback()
		r.RecordSubGoals(1)
		r.ObserveCandidates(1)
		r.RecordTrip(metrics.TripPlanned)
		r.RecordRoutesStored(1)
		r.RecordRun(time.Second)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordBacktrack()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "pedroute_backtracks_total 1"))
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, b := metrics.NewRegistry(), metrics.NewRegistry()
	a.RecordFallback()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.FallbacksTotal))
}
