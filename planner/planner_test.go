package planner_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
	"github.com/katalvlaran/pedroute/planner"
)

func TestNewPlanner_Errors(t *testing.T) {
	_, err := planner.NewPlanner(nil)
	assert.ErrorIs(t, err, planner.ErrGraphNil)

	g := twoRegions(t)
	_, err = planner.NewPlanner(g, planner.WithNavigator(nil))
	assert.ErrorIs(t, err, planner.ErrOptionViolation)
	_, err = planner.NewPlanner(g, planner.WithScorerOptions(gateway.WithWorkers(0)))
	assert.ErrorIs(t, err, gateway.ErrOptionViolation)
	_, err = planner.NewPlanner(g, planner.WithNavigatorOptions(barrier.WithCone(-1)))
	assert.ErrorIs(t, err, barrier.ErrOptionViolation)
}

func TestPlan_UnknownNodes(t *testing.T) {
	p := newPlanner(t, twoRegions(t))

	_, err := p.PlanCoarseRoute(99, 4, regional)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = p.PlanCoarseRoute(1, 99, regional)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPlan_TwoRegions(t *testing.T) {
	p := newPlanner(t, twoRegions(t))

	seq, err := p.PlanCoarseRoute(1, 4, regional)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, seq)
}

func TestPlan_BadExitFallsBackToDestination(t *testing.T) {
	p := newPlanner(t, twoRegions(t))

	res, err := p.Plan(1, 4, regional, planner.WithBadExits(core.GatewayKey{Exit: 2, Entry: 3}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 4}, res.Sequence)
	assert.True(t, res.Fallback)
	assert.Zero(t, res.Backtracks)
	assert.Equal(t, 1, res.Steps)
}

func TestPlan_BadExitsAreCallLocal(t *testing.T) {
	p := newPlanner(t, twoRegions(t))

	_, err := p.Plan(1, 4, regional, planner.WithBadExits(core.GatewayKey{Exit: 2, Entry: 3}))
	require.NoError(t, err)

	seq, err := p.PlanCoarseRoute(1, 4, regional)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, seq)
}

func TestPlan_SameRegion(t *testing.T) {
	p := newPlanner(t, twoRegions(t))

	for _, a := range []agent.Properties{regional, barriers} {
		res, err := p.Plan(1, 2, a)
		require.NoError(t, err)
		assert.Equal(t, []core.NodeID{1, 2}, res.Sequence)
		assert.Zero(t, res.Steps)
	}
}

func TestPlan_BacktracksOutOfDeadEnd(t *testing.T) {
	p := newPlanner(t, deadEnd(t))

	res, err := p.Plan(1, 6, regional)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 4, 5, 6}, res.Sequence)
	assert.Equal(t, 1, res.Backtracks)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, 2, res.Hops)
	assert.False(t, res.Fallback)
}

func TestPlan_SecondFailureFallsBack(t *testing.T) {
	p := newPlanner(t, chainToNowhere(t))

	res, err := p.Plan(1, 9, regional)
	require.NoError(t, err)
	// C is a dead end: undo B→C, then B has nothing left and no hop to undo.
	assert.Equal(t, []core.NodeID{1, 2, 3, 9}, res.Sequence)
	assert.Equal(t, 1, res.Backtracks)
	assert.Equal(t, 4, res.Steps)
	assert.True(t, res.Fallback)
}

func TestPlan_ReachabilityCheck(t *testing.T) {
	g := chainToNowhere(t)
	p := newPlanner(t, g, planner.WithReachabilityCheck())

	_, err := p.Plan(1, 9, regional)
	assert.ErrorIs(t, err, planner.ErrUnreachable)

	seq, err := p.PlanCoarseRoute(1, 5, regional)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4, 5}, seq)
}

func TestPlan_EntryIsDestination(t *testing.T) {
	g := buildGraph(t,
		[]node{{1, 0, 0, regionA}, {2, 10, 0, regionB}},
		[][3]int{{1, 1, 2}},
	)
	p := newPlanner(t, g)

	res, err := p.Plan(1, 2, regional)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 1, 2, 2}, res.Raw)
	assert.Equal(t, []core.NodeID{1, 2}, res.Sequence)
}

func TestPlan_NoBarrierAgentSkipsIntegration(t *testing.T) {
	g := city(t, 3)
	nav := &countingNavigator{}
	p := newPlanner(t, g, planner.WithNavigator(nav))

	res, err := p.Plan(0, core.NodeID(g.NodeCount()-1), regional)
	require.NoError(t, err)
	assert.Zero(t, nav.calls)
	assert.Empty(t, res.SubGoals)
	assert.Equal(t, unique(res.Raw), res.Sequence)
}

func TestPlan_BarrierAgentUsesNavigator(t *testing.T) {
	g := city(t, 3)
	nav := &countingNavigator{}
	p := newPlanner(t, g, planner.WithNavigator(nav))

	_, err := p.Plan(0, core.NodeID(g.NodeCount()-1), barriers)
	require.NoError(t, err)
	assert.Positive(t, nav.calls)
}

func TestPlan_BarrierSubGoal(t *testing.T) {
	b := core.NewBuilder()
	pts := []struct {
		id     core.NodeID
		pt     orb.Point
		region core.RegionID
	}{
		{1, orb.Point{0, 0}, regionA}, {2, orb.Point{30, 10}, regionA},
		{3, orb.Point{60, 10}, regionA}, {4, orb.Point{80, 0}, regionA},
		{5, orb.Point{90, 0}, regionB}, {6, orb.Point{150, 0}, regionB},
	}
	for _, n := range pts {
		require.NoError(t, b.AddNode(n.id, n.pt, n.region))
	}
	require.NoError(t, b.AddBarrier(70, "water", orb.LineString{{30, 15}, {60, 15}}))
	for i, e := range [][2]core.NodeID{{1, 2}, {2, 3}, {3, 4}, {1, 4}, {4, 5}, {5, 6}} {
		var opts []core.EdgeOption
		if i == 1 {
			opts = append(opts, core.WithBarriers(70))
		}
		require.NoError(t, b.AddEdge(core.EdgeID(i+1), e[0], e[1], opts...))
	}
	g, err := b.Build()
	require.NoError(t, err)
	p := newPlanner(t, g)

	res, err := p.Plan(1, 6, barriers)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 4, 5, 6}, res.Raw)
	assert.Equal(t, []core.NodeID{1, 2, 4, 5, 6}, res.Sequence)
	assert.Equal(t, []core.NodeID{2}, res.SubGoals)

	plain, err := p.PlanCoarseRoute(1, 6, regional)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 4, 5, 6}, plain)
}

func TestPlan_FallbackSkipsBarriers(t *testing.T) {
	g := twoRegions(t)
	nav := &countingNavigator{}
	p := newPlanner(t, g, planner.WithNavigator(nav))

	res, err := p.Plan(1, 4, barriers, planner.WithBadExits(core.GatewayKey{Exit: 2, Entry: 3}))
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Zero(t, nav.calls)
	assert.Equal(t, []core.NodeID{1, 4}, res.Sequence)
}

func TestPlan_Metrics(t *testing.T) {
	reg := metrics.NewRegistry()
	p := newPlanner(t, deadEnd(t), planner.WithMetrics(reg))

	_, err := p.Plan(1, 6, regional)
	require.NoError(t, err)
	_, err = p.Plan(1, 6, regional, planner.WithBadExits(
		core.GatewayKey{Exit: 2, Entry: 3}, core.GatewayKey{Exit: 4, Entry: 5}))
	require.NoError(t, err)
	_, err = p.Plan(99, 6, barriers)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.PlansTotal.WithLabelValues(metrics.ModeRegions, metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.PlansTotal.WithLabelValues(metrics.ModeRegions, metrics.OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.PlansTotal.WithLabelValues(metrics.ModeBarriers, metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.BacktracksTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.FallbacksTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(reg.GatewayCandidates))
}

func TestPlan_ScorerHookChainedWithMetrics(t *testing.T) {
	var seen []int
	p := newPlanner(t, twoRegions(t),
		planner.WithMetrics(metrics.NewRegistry()),
		planner.WithScorerOptions(gateway.WithOnEvaluate(func(n int) { seen = append(seen, n) })))

	_, err := p.Plan(1, 4, regional)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, seen)
}

func TestPlan_LogsBacktracks(t *testing.T) {
	var buf bytes.Buffer
	p := newPlanner(t, deadEnd(t), planner.WithLogger(logging.NewJSONLogger(&buf, logging.DebugLevel)))

	_, err := p.Plan(1, 6, regional)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry struct {
		Msg    string         `json:"msg"`
		Fields map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "backtracking", entry.Msg)
	assert.Equal(t, "planner", entry.Fields["component"])
}

// countingNavigator never finds a barrier and counts lookups.
type countingNavigator struct{ calls int }

func (c *countingNavigator) FindValidBarriers(*barrier.Trip, core.NodeID, core.RegionID) map[core.BarrierID]float64 {
	c.calls++
	return nil
}

func (c *countingNavigator) IdentifySubGoal(*barrier.Trip, core.NodeID, map[core.BarrierID]float64, core.RegionID) (core.EdgeID, core.BarrierID, bool) {
	return 0, 0, false
}

func unique(seq []core.NodeID) []core.NodeID {
	seen := make(map[core.NodeID]bool)
	var out []core.NodeID
	for _, n := range seq {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
