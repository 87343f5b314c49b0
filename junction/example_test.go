package junction_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/disjoint/cluster"
	"github.com/katalvlaran/disjoint/junction"
)

func ExampleSolve() {
	points, err := junction.Parse(strings.NewReader("0,0,0\n0,0,1\n10,10,10\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := junction.Solve(points, cluster.WithConnections(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Part 1:", res.Part1)
	fmt.Println("Part 2:", res.Part2, res.LastEdge.From, res.LastEdge.To)
	// Output:
	// Part 1: 2
	// Part 2: 0 0,0,1 10,10,10
}
