package initpart_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/initpart"
	"github.com/katalvlaran/partkit/objective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T, nbrP int) *core.ModelSet {
	t.Helper()
	topo, err := core.NewGraphTopology(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	vw := core.NewUniformWeights(4, 1)
	part, err := core.NewPartition([]int{0, 1, 0, 1}, 4, nbrP)
	require.NoError(t, err)
	ms, err := core.NewModelSet(topo, vw, core.NewUniformWeights(3, 1), part, core.NewUniformTargets(1, nbrP))
	require.NoError(t, err)
	return ms
}

// All-in-one on a unit 4-path with nbr_p=2 yields parts=[0,0,0,0],
// cut 0, imbalance +1.
func TestAllInOne_PathScenario(t *testing.T) {
	ms := buildPath(t, 2)

	require.NoError(t, initpart.AllInOne(ms, 0))
	assert.Equal(t, []int{0, 0, 0, 0}, ms.Partition.Parts)

	cut := objective.CutLambdaMinusOne(ms.Topology, ms.EdgeWeights, ms.Partition)
	assert.EqualValues(t, 0, cut)

	imbs := objective.Imbalances(ms, ms.Targets)
	assert.InDelta(t, 1.0, objective.MaxImbalance(imbs), 1e-9)
}

func TestAllInOne_PartOutOfRange(t *testing.T) {
	ms := buildPath(t, 2)
	err := initpart.AllInOne(ms, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, initpart.ErrPartOutOfRange)
}

func TestRandom_PartsInRangeAndReproducible(t *testing.T) {
	ms := buildPath(t, 3)
	require.NoError(t, initpart.Random(ms, rand.New(rand.NewSource(42))))
	for _, p := range ms.Partition.Parts {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 3)
	}
	got := append([]int(nil), ms.Partition.Parts...)

	ms2 := buildPath(t, 3)
	require.NoError(t, initpart.Random(ms2, rand.New(rand.NewSource(42))))
	assert.Equal(t, got, ms2.Partition.Parts)
}

func TestRandom_NilRand(t *testing.T) {
	ms := buildPath(t, 2)
	err := initpart.Random(ms, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, initpart.ErrNilRand))
}
