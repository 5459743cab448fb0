package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pedroute/bfs"
	"github.com/katalvlaran/pedroute/builder"
)

// ExampleBFS layers the nine districts of a 9×9 street grid split into
// 3×3 blocks. District ids count row by row from the top-left corner.
func ExampleBFS() {
	g, err := builder.BuildCity(nil, builder.Grid(9, 9, 10), builder.Districts(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)

	path, _ := res.PathTo(8)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 5 8]
}
