package fm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/partkit/constraint"
	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/fm"
	"github.com/katalvlaran/partkit/objective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T, parts []int, nbrP int) *core.ModelSet {
	t.Helper()
	topo, err := core.NewGraphTopology(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	part, err := core.NewPartition(parts, 4, nbrP)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, nbrP)
	ms, err := core.NewModelSet(topo, vw, core.NewUniformWeights(3, 1), part, targets)
	require.NoError(t, err)
	return ms
}

// Bipart FM on a 4-path strictly reduces cut 3 -> 1.
func TestRefiner_BipartPathScenario(t *testing.T) {
	ms := buildPath(t, []int{0, 1, 0, 1}, 2)
	ew := core.NewUniformWeights(3, 1)
	// A 0.5 tolerance admits a 3-1 split but not all-in-one.
	c := constraint.NewImbalance(ms, ms.Targets, []float64{0.5})

	r, err := fm.New(ms, ew, c, fm.WithStopInner(fm.StopInner{MaxNegRow: 1}))
	require.NoError(t, err)

	initialCut := objective.CutLambdaMinusOne(ms.Topology, ew, ms.Partition)
	require.EqualValues(t, 3, initialCut)

	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	finalCut := objective.CutLambdaMinusOne(ms.Topology, ew, ms.Partition)
	assert.EqualValues(t, 1, finalCut)
	assert.Equal(t, finalCut, stats.ObjValue)
	assert.Less(t, finalCut, initialCut)
}

// K-way FM on a 6-cycle with a zero tolerance terminates without
// improvement (every admissible move is blocked).
func TestRefiner_KwayCycleZeroTolerance(t *testing.T) {
	topo, err := core.NewGraphTopology(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(6, 1)
	part, err := core.NewPartition([]int{0, 1, 2, 0, 1, 2}, 6, 3)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 3)
	ew := core.NewUniformWeights(6, 1)
	ms, err := core.NewModelSet(topo, vw, ew, part, targets)
	require.NoError(t, err)

	c := constraint.NewImbalance(ms, targets, []float64{0.0})
	r, err := fm.New(ms, ew, c)
	require.NoError(t, err)

	initialCut := objective.CutLambdaMinusOne(topo, ew, part)
	require.EqualValues(t, 6, initialCut)

	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	finalCut := objective.CutLambdaMinusOne(topo, ew, part)
	assert.EqualValues(t, 6, finalCut)
	assert.EqualValues(t, 0, stats.MovesDone)
}

func TestNew_RejectsNonIntegerEdgeWeights(t *testing.T) {
	ms := buildPath(t, []int{0, 1, 0, 1}, 2)
	ew, err := core.NewEdgeWeights([][]float64{{1.5}, {1}, {1}})
	require.NoError(t, err)
	c := constraint.NewImbalance(ms, ms.Targets, []float64{1.0})

	_, err = fm.New(ms, ew, c)
	assert.ErrorIs(t, err, fm.ErrNonIntegerEdgeWeight)
}

func TestNew_RejectsHypergraph(t *testing.T) {
	topo, err := core.NewHypergraphTopology(4, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	hw := core.NewUniformWeights(1, 1)
	part, err := core.NewPartition([]int{0, 0, 1, 1}, 4, 2)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 2)
	ms, err := core.NewModelSet(topo, vw, hw, part, targets)
	require.NoError(t, err)
	c := constraint.NewImbalance(ms, targets, []float64{1.0})

	_, err = fm.New(ms, hw, c)
	assert.ErrorIs(t, err, fm.ErrHypergraphUnsupported)
}
