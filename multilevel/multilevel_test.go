package multilevel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/initpart"
	"github.com/katalvlaran/partkit/multilevel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModelSet(t *testing.T, nbrN int, edges [][2]int, edgeWeights [][]float64) *core.ModelSet {
	t.Helper()
	topo, err := core.NewGraphTopology(nbrN, edges)
	require.NoError(t, err)
	vw := core.NewUniformWeights(nbrN, 1)
	ew := core.NewUniformWeights(len(edges), 1)
	if edgeWeights != nil {
		ew, err = core.NewEdgeWeights(edgeWeights)
		require.NoError(t, err)
	}
	part, err := core.NewPartition(make([]int, nbrN), nbrN, 2)
	require.NoError(t, err)
	ms, err := core.NewModelSet(topo, vw, ew, part, core.NewUniformTargets(1, 2))
	require.NoError(t, err)
	return ms
}

func TestMatchFirst_PairsAlongPath(t *testing.T) {
	ms := buildModelSet(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, nil)
	agg := multilevel.MatchFirst().Match(ms.Topology, ms.EntityWeights(), multilevel.Identity.Sequence(4), nil)
	// 0 pairs with 1, then 2 pairs with 3.
	assert.Equal(t, []int{0, 0, 1, 1}, agg)
}

func TestMatchHEM_PrefersHeaviestEdge(t *testing.T) {
	// star: center 0 with edges to 1 (w=1), 2 (w=5), 3 (w=2).
	ms := buildModelSet(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}, [][]float64{{1}, {5}, {2}})
	agg := multilevel.MatchHEM().Match(ms.Topology, ms.EntityWeights(), multilevel.Identity.Sequence(4), nil)
	// 0 takes its heaviest neighbor 2; 1 and 3 stay alone.
	assert.Equal(t, agg[0], agg[2])
	assert.NotEqual(t, agg[1], agg[0])
	assert.NotEqual(t, agg[3], agg[0])
	assert.NotEqual(t, agg[1], agg[3])
}

func TestMatchRandom_FibersAtMostTwo(t *testing.T) {
	edges := make([][2]int, 8)
	for i := 0; i < 8; i++ {
		edges[i] = [2]int{i, (i + 1) % 8}
	}
	ms := buildModelSet(t, 8, edges, nil)
	rng := rand.New(rand.NewSource(11))
	agg := multilevel.MatchRandom(rng).Match(ms.Topology, ms.EntityWeights(), multilevel.Random(rng).Sequence(8), nil)

	sizes := map[int]int{}
	for _, c := range agg {
		sizes[c]++
	}
	for coarse, n := range sizes {
		assert.LessOrEqualf(t, n, 2, "coarse vertex %d", coarse)
	}
}

func TestNWeightsRestriction_BlocksOverweightMerge(t *testing.T) {
	ms := buildModelSet(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, nil)
	// Normalized per-vertex weight is 0.25; forbid aggregates above 0.3, so
	// no pair may form and every vertex stays alone.
	nw, err := core.NewVertexWeights([][]float64{{0.25}, {0.25}, {0.25}, {0.25}})
	require.NoError(t, err)
	restrict := multilevel.NWeightsRestriction(multilevel.UnderAll, 0.3, nw)

	agg := multilevel.MatchFirst().Match(ms.Topology, ms.EntityWeights(), multilevel.Identity.Sequence(4), restrict)
	assert.Equal(t, []int{0, 1, 2, 3}, agg)

	// A 0.6 cap admits pairs again.
	loose := multilevel.NWeightsRestriction(multilevel.UnderAll, 0.6, nw)
	agg = multilevel.MatchFirst().Match(ms.Topology, ms.EntityWeights(), multilevel.Identity.Sequence(4), loose)
	assert.Equal(t, []int{0, 0, 1, 1}, agg)
}

func TestAnd_Conjoins(t *testing.T) {
	allow := multilevel.Restriction(func([]int) bool { return true })
	deny := multilevel.Restriction(func([]int) bool { return false })
	assert.True(t, multilevel.And(allow, allow)([]int{0, 1}))
	assert.False(t, multilevel.And(allow, deny)([]int{0, 1}))
}

// Coarsen by first-match, all-in-one on the coarse graph, prolong; every
// fine vertex ends in part 0.
func TestCoarsenProlong_RoundTrip(t *testing.T) {
	ms := buildModelSet(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}, nil)
	stack := core.Stack{{Models: ms}}

	coarse, err := multilevel.CoarsenOne(stack[0], multilevel.Identity, multilevel.MatchFirst(), nil)
	require.NoError(t, err)
	stack = append(stack, coarse)
	require.Less(t, coarse.Models.Topology.NbrN, 6)

	require.NoError(t, initpart.AllInOne(coarse.Models, 0))
	require.NoError(t, multilevel.ProlongOne(&stack))

	require.Len(t, stack, 1)
	for i, p := range stack[0].Models.Partition.Parts {
		assert.Equalf(t, 0, p, "fine vertex %d", i)
	}
}

// With an identity refinement between coarsen and prolong, each fine
// vertex inherits exactly the part of its coarse image.
func TestProlong_InheritsThroughAggregation(t *testing.T) {
	ms := buildModelSet(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, nil)
	stack := core.Stack{{Models: ms}}

	coarse, err := multilevel.CoarsenOne(stack[0], multilevel.Identity, multilevel.MatchFirst(), nil)
	require.NoError(t, err)
	stack = append(stack, coarse)

	agg := append([]int(nil), stack[0].Aggregation...)
	coarse.Models.Partition.Parts[0] = 0
	coarse.Models.Partition.Parts[1] = 1

	require.NoError(t, multilevel.ProlongOne(&stack))
	for i, p := range stack[0].Models.Partition.Parts {
		want := 0
		if agg[i] == 1 {
			want = 1
		}
		assert.Equalf(t, want, p, "fine vertex %d", i)
	}
}

func TestRecurse_StopsAtThreshold(t *testing.T) {
	edges := make([][2]int, 16)
	for i := 0; i < 16; i++ {
		edges[i] = [2]int{i, (i + 1) % 16}
	}
	ms := buildModelSet(t, 16, edges, nil)
	stack := core.Stack{{Models: ms}}

	stop := func(current, original, finer int) bool { return current <= 4 }
	require.NoError(t, multilevel.Recurse(&stack, stop, multilevel.Identity, multilevel.MatchFirst(), nil))

	top := stack[len(stack)-1].Models.Topology.NbrN
	assert.LessOrEqual(t, top, 4)
	// Every level shrinks and records a surjective aggregation.
	for l := 0; l < len(stack)-1; l++ {
		fine := stack[l].Models.Topology.NbrN
		coarseN := stack[l+1].Models.Topology.NbrN
		assert.Less(t, coarseN, fine)
		require.Len(t, stack[l].Aggregation, fine)
		seen := make([]bool, coarseN)
		for _, c := range stack[l].Aggregation {
			seen[c] = true
		}
		for c, ok := range seen {
			assert.Truef(t, ok, "level %d coarse vertex %d unmapped", l, c)
		}
	}
}

func TestProlong_RequiresTwoLevels(t *testing.T) {
	ms := buildModelSet(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, nil)
	stack := core.Stack{{Models: ms}}
	err := multilevel.ProlongOne(&stack)
	require.Error(t, err)
	assert.ErrorIs(t, err, multilevel.ErrEmptyStack)
}
