package barrier_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
)

const (
	regionA core.RegionID = 10
	regionB core.RegionID = 20
)

// Base fixture nodes.
const (
	nodeO  core.NodeID = 1
	nodeS  core.NodeID = 2
	nodeT  core.NodeID = 3
	nodeE1 core.NodeID = 4
	nodeI1 core.NodeID = 5
	nodeD  core.NodeID = 6
)

const (
	riverID core.BarrierID = 70
	railID  core.BarrierID = 80
)

// fixture builds
//
//	region A:  O(0,0) ─ S(30,10) ═river═ T(60,10) ─ E1(80,0), plus O ─ E1
//	region B:  I1(90,0) ─ D(150,0)
//
// with E1 → I1 the only crossing and a rail line alongside O ─ S. extra
// hooks add nodes and edges before Build.
func fixture(t testing.TB, extra ...func(b *core.Builder)) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddNode(nodeO, orb.Point{0, 0}, regionA))
	require.NoError(t, b.AddNode(nodeS, orb.Point{30, 10}, regionA))
	require.NoError(t, b.AddNode(nodeT, orb.Point{60, 10}, regionA))
	require.NoError(t, b.AddNode(nodeE1, orb.Point{80, 0}, regionA))
	require.NoError(t, b.AddNode(nodeI1, orb.Point{90, 0}, regionB))
	require.NoError(t, b.AddNode(nodeD, orb.Point{150, 0}, regionB))
	require.NoError(t, b.AddBarrier(riverID, "water", orb.LineString{{30, 15}, {60, 15}}))
	require.NoError(t, b.AddBarrier(railID, "rail", orb.LineString{{0, -3}, {30, 7}}))
	require.NoError(t, b.AddEdge(1, nodeO, nodeS, core.WithBarriers(railID)))
	require.NoError(t, b.AddEdge(2, nodeS, nodeT, core.WithBarriers(riverID)))
	require.NoError(t, b.AddEdge(3, nodeT, nodeE1))
	require.NoError(t, b.AddEdge(4, nodeO, nodeE1))
	require.NoError(t, b.AddEdge(5, nodeE1, nodeI1))
	require.NoError(t, b.AddEdge(6, nodeI1, nodeD))
	for _, fn := range extra {
		fn(b)
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func newIntegrator(t testing.TB, g *core.Graph, nav barrier.Navigator) *barrier.Integrator {
	t.Helper()
	s, err := gateway.NewScorer(g)
	require.NoError(t, err)
	in, err := barrier.NewIntegrator(g, s, nav)
	require.NoError(t, err)

	return in
}

// stubNavigator returns a fixed edge per lookahead node and records calls.
type stubNavigator struct {
	edges map[core.NodeID]core.EdgeID
	calls []core.NodeID
	used  []int
}

func (s *stubNavigator) FindValidBarriers(trip *barrier.Trip, node core.NodeID, _ core.RegionID) map[core.BarrierID]float64 {
	s.calls = append(s.calls, node)
	s.used = append(s.used, len(trip.UsedBarriers))
	if _, ok := s.edges[node]; !ok {
		return nil
	}

	return map[core.BarrierID]float64{core.BarrierID(node): 1}
}

func (s *stubNavigator) IdentifySubGoal(_ *barrier.Trip, node core.NodeID, _ map[core.BarrierID]float64, _ core.RegionID) (core.EdgeID, core.BarrierID, bool) {
	e, ok := s.edges[node]

	return e, core.BarrierID(node), ok
}
