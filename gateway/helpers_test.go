package gateway_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/builder"
	"github.com/katalvlaran/pedroute/core"
)

const (
	regionA core.RegionID = 10
	regionB core.RegionID = 20
	regionC core.RegionID = 30
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

// twoRegions: O(0,0) - E1(50,0) | I1(60,0) - D(100,0).
func twoRegions(t testing.TB) *core.Graph {
	return buildGraph(t,
		[]node{{1, 0, 0, regionA}, {2, 50, 0, regionA}, {3, 60, 0, regionB}, {4, 100, 0, regionB}},
		[][3]int{{100, 1, 2}, {101, 2, 3}, {102, 3, 4}},
	)
}

// city returns a jittered 10×10 grid split into 3×3-cell districts.
func city(t testing.TB, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildCity(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithJitter(0.3)},
		builder.Grid(10, 10, 40),
		builder.Districts(3, 3),
	)
	require.NoError(t, err)

	return g
}
