// Package core_test provides benchmarks for building and querying a Graph.
package core_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pedroute/core"
)

// gridBuilder fills a Builder with an n×n street grid split into four
// quadrant regions.
func gridBuilder(b *testing.B, n int) *core.Builder {
	b.Helper()
	bld := core.NewBuilder()
	region := func(r, c int) core.RegionID {
		return core.RegionID((r*2/n)*2 + c*2/n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := core.NodeID(r*n + c)
			if err := bld.AddNode(id, orb.Point{float64(c * 10), float64(r * 10)}, region(r, c)); err != nil {
				b.Fatal(err)
			}
		}
	}
	eid := core.EdgeID(0)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := core.NodeID(r*n + c)
			if c+1 < n {
				_ = bld.AddEdge(eid, id, id+1)
				eid++
			}
			if r+1 < n {
				_ = bld.AddEdge(eid, id, id+core.NodeID(n))
				eid++
			}
		}
	}

	return bld
}

// BenchmarkBuild_Grid64 measures Build, gateway derivation included.
func BenchmarkBuild_Grid64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		bld := gridBuilder(b, 64)
		b.StartTimer()
		if _, err := bld.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRegionLookup measures reading the gateways of every region.
func BenchmarkRegionLookup(b *testing.B) {
	g, err := gridBuilder(b, 64).Build()
	if err != nil {
		b.Fatal(err)
	}
	regions := g.Regions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, _ := g.Region(regions[i%len(regions)])
		_ = len(r.Gateways)
	}
}
