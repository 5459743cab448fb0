package barrier_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
)

// ExampleIntegrator_InsertSubGoals routes the walker to the river bank at
// node 2 before it heads for the exit at node 4.
func ExampleIntegrator_InsertSubGoals() {
	b := core.NewBuilder()
	_ = b.AddNode(1, orb.Point{0, 0}, 10)
	_ = b.AddNode(2, orb.Point{30, 10}, 10)
	_ = b.AddNode(3, orb.Point{60, 10}, 10)
	_ = b.AddNode(4, orb.Point{80, 0}, 10)
	_ = b.AddNode(5, orb.Point{90, 0}, 20)
	_ = b.AddNode(6, orb.Point{150, 0}, 20)
	_ = b.AddBarrier(70, "water", orb.LineString{{30, 15}, {60, 15}})
	_ = b.AddEdge(1, 1, 2)
	_ = b.AddEdge(2, 2, 3, core.WithBarriers(70))
	_ = b.AddEdge(3, 3, 4)
	_ = b.AddEdge(4, 1, 4)
	_ = b.AddEdge(5, 4, 5)
	_ = b.AddEdge(6, 5, 6)
	g, _ := b.Build()

	s, _ := gateway.NewScorer(g)
	in, _ := barrier.NewIntegrator(g, s, nil)
	walker := agent.Properties{ID: 1, BarrierBasedNavigation: true}

	fmt.Println(in.InsertSubGoals([]core.NodeID{1, 4, 5, 6}, 1, 6, walker))

	// Output:
	// [1 2 4 5 6]
}
