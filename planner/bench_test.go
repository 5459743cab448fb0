package planner_test

import (
	"testing"

	"github.com/katalvlaran/pedroute/builder"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/planner"
)

func benchPlan(b *testing.B, withBarriers bool) {
	const n = 60
	g, err := builder.BuildCity(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithJitter(0.2)},
		builder.Grid(n, n, 25), builder.Districts(6, 6), builder.River(30), builder.Park(40, 5, 50),
	)
	if err != nil {
		b.Fatal(err)
	}
	p, err := planner.NewPlanner(g)
	if err != nil {
		b.Fatal(err)
	}
	a := regional
	if withBarriers {
		a = barriers
	}
	origin, dest := builder.NodeAt(1, 1, n), core.NodeID(n*n-2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Plan(origin, dest, a)
	}
}

func BenchmarkPlan_Regions(b *testing.B)  { benchPlan(b, false) }
func BenchmarkPlan_Barriers(b *testing.B) { benchPlan(b, true) }
