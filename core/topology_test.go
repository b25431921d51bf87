package core_test

import (
	"testing"

	"github.com/katalvlaran/partkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathTopology(t *testing.T) *core.Topology {
	t.Helper()
	// 0-1-2-3
	topo, err := core.NewGraphTopology(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	return topo
}

func TestNewGraphTopology_AdjacencyInvariant(t *testing.T) {
	topo := pathTopology(t)
	require.NoError(t, topo.Validate())
	for i, row := range topo.Adjacency {
		for _, inc := range row {
			ends := topo.Edges[inc.Edge]
			assert.Contains(t, ends, i)
			assert.Contains(t, ends, inc.Neighbor)
		}
	}
}

func TestNewGraphTopology_RejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := core.NewGraphTopology(2, [][2]int{{0, 5}})
	require.Error(t, err)
}

func TestNewGraphTopology_EdgeSeenExactlyTwice(t *testing.T) {
	topo := pathTopology(t)
	seen := make([]int, topo.NbrE)
	for _, row := range topo.Adjacency {
		for _, inc := range row {
			seen[inc.Edge]++
		}
	}
	for e, n := range seen {
		assert.Equalf(t, 2, n, "edge %d seen %d times", e, n)
	}
}

func TestNewHypergraphTopology_SingleHyperedge(t *testing.T) {
	// one hyperedge over all 4 vertices.
	topo, err := core.NewHypergraphTopology(4, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, topo.Validate())
	// each vertex incident to 3 others via edge 0.
	assert.Len(t, topo.Adjacency[0], 3)
}

func TestNewHypergraphTopology_RejectsEmptyEdge(t *testing.T) {
	_, err := core.NewHypergraphTopology(3, [][]int{{}})
	require.Error(t, err)
}
