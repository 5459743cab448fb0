package simulation_test

import (
	"context"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/planner"
	"github.com/katalvlaran/pedroute/simulation"
	"github.com/katalvlaran/pedroute/store"
)

// islands builds
//
//	region 10: 1(0,0) ─ 2(50,0)   region 20: 3(60,0) ─ 4(100,0)
//	region 30: 5(0,100) ─ 6(10,100), connected to nothing else
func islands(t testing.TB) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	nodes := []struct {
		id     core.NodeID
		x, y   float64
		region core.RegionID
	}{
		{1, 0, 0, 10}, {2, 50, 0, 10}, {3, 60, 0, 20}, {4, 100, 0, 20}, {5, 0, 100, 30}, {6, 10, 100, 30},
	}
	for _, n := range nodes {
		require.NoError(t, b.AddNode(n.id, orb.Point{n.x, n.y}, n.region))
	}
	require.NoError(t, b.AddEdge(100, 1, 2))
	require.NoError(t, b.AddEdge(101, 2, 3))
	require.NoError(t, b.AddEdge(102, 3, 4))
	require.NoError(t, b.AddEdge(103, 5, 6))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func newPlanner(t testing.TB, g *core.Graph, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.NewPlanner(g, opts...)
	require.NoError(t, err)

	return p
}

func trip(from, to core.NodeID, code string, id int) simulation.Trip {
	a, err := agent.ParseRouteChoice(code)
	if err != nil {
		panic(err)
	}
	a.ID = id

	return simulation.Trip{Origin: from, Destination: to, Agent: a}
}

// recordingSaver keeps every Save call.
type recordingSaver struct {
	mu    sync.Mutex
	calls [][]store.Route
}

func (s *recordingSaver) Save(_ context.Context, routes ...store.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, routes)

	return nil
}
