// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pedroute/core.
//
// Purpose:
//   - Provide small, deterministic city fixtures shared by the core tests.
//   - Keep fixture IDs as named constants (no magic numbers in test bodies).

package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/core"
)

// Node IDs of the two-region fixture.
const (
	NodeO  core.NodeID = 1 // origin, region A
	NodeE1 core.NodeID = 2 // exit, region A
	NodeI1 core.NodeID = 3 // entry, region B
	NodeD  core.NodeID = 4 // destination, region B
)

// Region IDs of the fixtures.
const (
	RegionA core.RegionID = 10
	RegionB core.RegionID = 20
	RegionC core.RegionID = 30
)

// Edge IDs of the two-region fixture.
const (
	EdgeOE1  core.EdgeID = 100
	EdgeE1I1 core.EdgeID = 101
	EdgeI1D  core.EdgeID = 102
)

// Barrier IDs of the fixtures.
const (
	BarrierRiver core.BarrierID = 7
)

// buildTwoRegions RETURNS the graph O─E1 | I1─D where E1→I1 crosses from
// region A to region B. The river runs along O─E1.
func buildTwoRegions(t *testing.T) *core.Graph {
	t.Helper()

	b := core.NewBuilder()
	require.NoError(t, b.AddNode(NodeO, orb.Point{0, 0}, RegionA))
	require.NoError(t, b.AddNode(NodeE1, orb.Point{50, 0}, RegionA))
	require.NoError(t, b.AddNode(NodeI1, orb.Point{60, 0}, RegionB))
	require.NoError(t, b.AddNode(NodeD, orb.Point{100, 0}, RegionB))
	require.NoError(t, b.AddBarrier(BarrierRiver, "water", orb.LineString{{0, -5}, {50, -5}}))
	require.NoError(t, b.AddEdge(EdgeOE1, NodeO, NodeE1, core.WithBarriers(BarrierRiver)))
	require.NoError(t, b.AddEdge(EdgeE1I1, NodeE1, NodeI1))
	require.NoError(t, b.AddEdge(EdgeI1D, NodeI1, NodeD))

	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// buildTriangle RETURNS three regions pairwise linked by one crossing each:
//
//	A: 1(0,0)  ─ 2(10,0)  ═ B: 3(20,0) ─ 4(30,0)
//	A: 1       ─ 5(0,10)  ═ C: 6(0,20)
//	B: 4       ═ C: 6
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()

	b := core.NewBuilder()
	nodes := []struct {
		id     core.NodeID
		pt     orb.Point
		region core.RegionID
	}{
		{1, orb.Point{0, 0}, RegionA},
		{2, orb.Point{10, 0}, RegionA},
		{5, orb.Point{0, 10}, RegionA},
		{3, orb.Point{20, 0}, RegionB},
		{4, orb.Point{30, 0}, RegionB},
		{6, orb.Point{0, 20}, RegionC},
	}
	for _, n := range nodes {
		require.NoError(t, b.AddNode(n.id, n.pt, n.region))
	}
	edges := [][3]int{{1, 1, 2}, {2, 2, 3}, {3, 3, 4}, {4, 1, 5}, {5, 5, 6}, {6, 4, 6}}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(core.EdgeID(e[0]), core.NodeID(e[1]), core.NodeID(e[2])))
	}

	g, err := b.Build()
	require.NoError(t, err)

	return g
}
