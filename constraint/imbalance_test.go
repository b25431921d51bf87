package constraint_test

import (
	"testing"

	"github.com/katalvlaran/partkit/constraint"
	"github.com/katalvlaran/partkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*core.ModelSet, *core.Targets) {
	t.Helper()
	topo, err := core.NewGraphTopology(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	ew := core.NewUniformWeights(3, 1)
	part, err := core.NewPartition([]int{0, 1, 0, 1}, 4, 2)
	require.NoError(t, err)
	targets := core.NewUniformTargets(1, 2)
	ms, err := core.NewModelSet(topo, vw, ew, part, targets)
	require.NoError(t, err)
	return ms, targets
}

func TestCanMove_RespectsTolerance(t *testing.T) {
	ms, targets := setup(t)
	tight := constraint.NewImbalance(ms, targets, []float64{0.0})
	// every part already holds exactly target share; any move creates
	// imbalance exceeding a zero tolerance.
	assert.False(t, tight.CanMove(0, 0, 1))

	loose := constraint.NewImbalance(ms, targets, []float64{10})
	assert.True(t, loose.CanMove(0, 0, 1))
}

func TestMoved_UpdatesOnlyTwoEntries(t *testing.T) {
	ms, targets := setup(t)
	ib := constraint.NewImbalance(ms, targets, []float64{10})
	before := ib.Snapshot()

	ib.Moved(0, 0, 1)

	assert.NotEqual(t, before.Imb[0][0], ib.Imb[0][0])
	assert.NotEqual(t, before.Imb[0][1], ib.Imb[0][1])
}

func TestSnapshot_IsIndependentDeepCopy(t *testing.T) {
	ms, targets := setup(t)
	ib := constraint.NewImbalance(ms, targets, []float64{10})
	snap := ib.Snapshot()

	ib.Moved(0, 0, 1)

	assert.NotEqual(t, ib.Imb[0][0], snap.Imb[0][0])
	// NormWeights/Tolerances are shared, not copied.
	assert.Same(t, &ib.NormWeights[0][0], &snap.NormWeights[0][0])
}
