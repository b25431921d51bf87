package multilevel_test

import (
	"testing"

	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/multilevel"
)

// BenchmarkCoarsenOne measures one match-and-collapse step on a 4096-cycle.
func BenchmarkCoarsenOne(b *testing.B) {
	const nbrN = 4096
	edges := make([][2]int, nbrN)
	for i := 0; i < nbrN; i++ {
		edges[i] = [2]int{i, (i + 1) % nbrN}
	}
	topo, err := core.NewGraphTopology(nbrN, edges)
	if err != nil {
		b.Fatal(err)
	}
	vw := core.NewUniformWeights(nbrN, 1)
	ew := core.NewUniformWeights(nbrN, 1)
	part, err := core.NewPartition(make([]int, nbrN), nbrN, 2)
	if err != nil {
		b.Fatal(err)
	}
	ms, err := core.NewModelSet(topo, vw, ew, part, core.NewUniformTargets(1, 2))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		level := &core.Level{Models: ms}
		if _, err := multilevel.CoarsenOne(level, multilevel.Identity, multilevel.MatchFirst(), nil); err != nil {
			b.Fatal(err)
		}
	}
}
