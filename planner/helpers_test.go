package planner_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/builder"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/planner"
)

const (
	regionA core.RegionID = 10
	regionB core.RegionID = 20
	regionC core.RegionID = 30
	regionT core.RegionID = 40
)

var (
	regional = agent.Properties{ID: 1, RouteChoice: "RDS", RegionBasedNavigation: true}
	barriers = agent.Properties{ID: 2, RouteChoice: "RBDS", RegionBasedNavigation: true, BarrierBasedNavigation: true}
)

type node struct {
	id     core.NodeID
	x, y   float64
	region core.RegionID
}

// buildGraph builds a graph from nodes and edges given as {id, from, to}.
func buildGraph(t testing.TB, nodes []node, edges [][3]int) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, n := range nodes {
		require.NoError(t, b.AddNode(n.id, orb.Point{n.x, n.y}, n.region))
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(core.EdgeID(e[0]), core.NodeID(e[1]), core.NodeID(e[2])))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// twoRegions: O(1) ─ E1(2) │ I1(3) ─ D(4), region A then region B.
func twoRegions(t testing.TB) *core.Graph {
	return buildGraph(t,
		[]node{{1, 0, 0, regionA}, {2, 50, 0, regionA}, {3, 60, 0, regionB}, {4, 100, 0, regionB}},
		[][3]int{{100, 1, 2}, {101, 2, 3}, {102, 3, 4}},
	)
}

// deadEnd: from O(1) in A, the cheap exit a1(2)→b1(3) leads into B, which
// has no other way out; the dearer a2(4)→c1(5) reaches D(6) in C.
func deadEnd(t testing.TB) *core.Graph {
	return buildGraph(t,
		[]node{
			{1, 0, 0, regionA}, {2, 10, 0, regionA}, {4, 10, 10, regionA},
			{3, 20, 0, regionB},
			{5, 20, 10, regionC}, {6, 100, 0, regionC},
		},
		[][3]int{{1, 1, 2}, {2, 2, 3}, {3, 1, 4}, {4, 4, 5}, {5, 5, 6}},
	)
}

// chainToNowhere: A(1,2) → B(3,4) → C(5), with D(9) alone in region T.
func chainToNowhere(t testing.TB) *core.Graph {
	return buildGraph(t,
		[]node{
			{1, 0, 0, regionA}, {2, 10, 0, regionA},
			{3, 20, 0, regionB}, {4, 30, 0, regionB},
			{5, 40, 0, regionC},
			{9, 100, 0, regionT},
		},
		[][3]int{{1, 1, 2}, {2, 2, 3}, {3, 3, 4}, {4, 4, 5}},
	)
}

// city returns a jittered 12×12 grid split into 3×4-cell districts with a
// river and a park.
func city(t testing.TB, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildCity(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithJitter(0.3)},
		builder.Grid(12, 12, 40),
		builder.Districts(3, 4),
		builder.River(5),
		builder.Park(7, 1, 10),
	)
	require.NoError(t, err)

	return g
}

func newPlanner(t testing.TB, g *core.Graph, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.NewPlanner(g, opts...)
	require.NoError(t, err)

	return p
}
