package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedroute/core"
)

func TestRegionView_Filters(t *testing.T) {
	g := buildTwoRegions(t)

	va, err := g.RegionView(RegionA)
	require.NoError(t, err)
	assert.Equal(t, RegionA, va.ID())
	assert.Same(t, g, va.Graph())
	assert.True(t, va.Contains(EdgeOE1))
	assert.False(t, va.Contains(EdgeE1I1), "cross-region edges are outside every view")
	assert.Equal(t, []core.BarrierID{BarrierRiver}, va.Barriers())
	assert.Equal(t, []core.EdgeID{EdgeOE1}, va.EdgesAlong(BarrierRiver))
	assert.Nil(t, va.EdgesAlong(99))

	vb, err := g.RegionView(RegionB)
	require.NoError(t, err)
	assert.Empty(t, vb.Barriers())
	assert.Empty(t, vb.EdgesAlong(BarrierRiver))

	_, err = g.RegionView(99)
	assert.ErrorIs(t, err, core.ErrRegionNotFound)
}

func TestGraph_Midpoint(t *testing.T) {
	g := buildTwoRegions(t)
	assert.Equal(t, orb.Point{25, 0}, g.Midpoint(EdgeOE1))
	assert.Equal(t, orb.Point{}, g.Midpoint(99))
}
