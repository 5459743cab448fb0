package gateway_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
)

// ExampleScorer_FindGateway picks the exit of region 10 towards node 4.
func ExampleScorer_FindGateway() {
	b := core.NewBuilder()
	_ = b.AddNode(1, orb.Point{0, 0}, 10)
	_ = b.AddNode(2, orb.Point{50, 0}, 10)
	_ = b.AddNode(3, orb.Point{60, 0}, 20)
	_ = b.AddNode(4, orb.Point{100, 0}, 20)
	_ = b.AddEdge(100, 1, 2)
	_ = b.AddEdge(101, 2, 3)
	_ = b.AddEdge(102, 3, 4)
	g, _ := b.Build()

	s, _ := gateway.NewScorer(g)
	key, ok := s.FindGateway(gateway.Query{
		Current:     1,
		Region:      10,
		Desired:     gateway.AnyRegion,
		Destination: 4,
	})
	fmt.Println(key.Exit, key.Entry, ok)

	// Output:
	// 2 3 true
}
