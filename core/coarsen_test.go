package core_test

import (
	"testing"

	"github.com/katalvlaran/partkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPathModelSet(t *testing.T) *core.ModelSet {
	t.Helper()
	topo := pathTopology(t)
	vw := core.NewUniformWeights(topo.NbrN, 1)
	ew := core.NewUniformWeights(topo.NbrE, 1)
	part, err := core.NewPartition([]int{0, 1, 0, 1}, topo.NbrN, 2)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 2)
	ms, err := core.NewModelSet(topo, vw, ew, part, targets)
	require.NoError(t, err)
	return ms
}

func TestCoarsen_MassConservation(t *testing.T) {
	ms := buildPathModelSet(t)
	// aggregate (0,1)->0, (2,3)->1
	coarse, err := core.Coarsen(ms, []int{0, 0, 1, 1})
	require.NoError(t, err)
	require.NoError(t, coarse.VertexWeights.ValidateTotals())
	for c := 0; c < ms.NbrC(); c++ {
		assert.InDelta(t, ms.VertexWeights.Totals[c], coarse.VertexWeights.Totals[c], 1e-9)
	}
}

func TestCoarsen_CollapsesSelfLoops(t *testing.T) {
	// triangle 0-1, 1-2, 2-0, aggregate all three to the same coarse vertex
	// plus a lone vertex 3 joined to 0, so every triangle edge becomes a
	// self-loop and is dropped.
	topo, err := core.NewGraphTopology(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	ew := core.NewUniformWeights(4, 1)
	part, err := core.NewPartition([]int{0, 0, 0, 0}, 4, 1)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 1)
	ms, err := core.NewModelSet(topo, vw, ew, part, targets)
	require.NoError(t, err)

	coarse, err := core.Coarsen(ms, []int{0, 0, 0, 1})
	require.NoError(t, err)
	// the triangle's three edges all collapse to self-loops on coarse
	// vertex 0 and are dropped; only the 0-3 edge survives, as coarse (0,1).
	require.Equal(t, 1, coarse.Topology.NbrE)
	assert.ElementsMatch(t, []int{0, 1}, coarse.Topology.Edges[0])
}

func TestCoarsen_MergesParallelEdgesByWeight(t *testing.T) {
	// two disjoint paths 0-1 and 2-3, both aggregated onto the same
	// coarse pair (0,0)->0 and (1,1)->... construct parallel edges
	// directly: two edges between vertices that map to the same coarse pair.
	topo, err := core.NewGraphTopology(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	ew, err := core.NewEdgeWeights([][]float64{{2}, {3}})
	require.NoError(t, err)
	part, err := core.NewPartition([]int{0, 0, 0, 0}, 4, 1)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 1)
	ms, err := core.NewModelSet(topo, vw, ew, part, targets)
	require.NoError(t, err)

	// 0,2 -> coarse 0 ; 1,3 -> coarse 1: both fine edges become coarse edge (0,1)
	coarse, err := core.Coarsen(ms, []int{0, 1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, coarse.Topology.NbrE)
	assert.Equal(t, 5.0, coarse.EdgeWeights.Matrix[0][0])
}

func TestCoarsen_HypergraphDropsSingletonProjections(t *testing.T) {
	topo, err := core.NewHypergraphTopology(4, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	hw := core.NewUniformWeights(1, 1)
	part, err := core.NewPartition([]int{0, 0, 0, 0}, 4, 1)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 1)
	ms, err := core.NewModelSet(topo, vw, hw, part, targets)
	require.NoError(t, err)

	// collapse everything to one coarse vertex: the hyperedge projects to
	// a singleton and is dropped.
	coarse, err := core.Coarsen(ms, []int{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, coarse.Topology.NbrE)
}

func TestCoarsen_RejectsNonSurjectiveAggregation(t *testing.T) {
	ms := buildPathModelSet(t)
	_, err := core.Coarsen(ms, []int{0, 0, 2, 2}) // skips coarse vertex 1
	require.Error(t, err)
}
