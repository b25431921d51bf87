package vnrefine_test

import (
	"fmt"

	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/vnrefine"
)

// ExampleBest balances four vertices of weights 4, 3, 2, 1 that all start
// in part 0: the refiner moves weight across until both parts carry 0.5 of
// the total and the aggregate imbalance reaches zero.
func ExampleBest() {
	topo, _ := core.NewGraphTopology(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	vw, _ := core.NewVertexWeights([][]float64{{4}, {3}, {2}, {1}})
	ew := core.NewUniformWeights(3, 1)
	part, _ := core.NewPartition([]int{0, 0, 0, 0}, 4, 2)
	targets := core.NewUniformTargets(1, 2)
	ms, _ := core.NewModelSet(topo, vw, ew, part, targets)

	stats := vnrefine.Best(ms, targets)
	fmt.Printf("imbalance: %.2f -> %.2f\n", stats.MaxImbalanceStart, stats.MaxImbalanceEnd)

	// Output:
	// imbalance: 1.00 -> 0.00
}
