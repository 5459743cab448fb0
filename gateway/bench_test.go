package gateway_test

import (
	"testing"

	"github.com/katalvlaran/pedroute/builder"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
)

func benchCity(b *testing.B) *core.Graph {
	b.Helper()
	// Wide districts give each region many gateways.
	g, err := builder.BuildCity(nil, builder.Grid(60, 60, 20), builder.Districts(30, 30))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchFind(b *testing.B, opts ...gateway.Option) {
	g := benchCity(b)
	s, err := gateway.NewScorer(g, opts...)
	if err != nil {
		b.Fatal(err)
	}
	q := gateway.Query{Current: 0, Region: g.RegionOf(0), Desired: gateway.AnyRegion, Destination: core.NodeID(g.NodeCount() - 1)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.FindGateway(q)
	}
}

func BenchmarkFindGateway_Sequential(b *testing.B) { benchFind(b) }

func BenchmarkFindGateway_Parallel(b *testing.B) {
	benchFind(b, gateway.WithWorkers(4), gateway.WithParallelThreshold(8))
}
