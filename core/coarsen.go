package core

import (
	"fmt"

	"github.com/katalvlaran/partkit"
)

// Coarsen builds the next (coarser) model set from ms and an aggregation
// vector: aggregation[i] is the coarse vertex id fine vertex i maps to.
// aggregation must be surjective onto [0, nbrCoarse).
//
// Graphs: coarse edges drop self-loops (both endpoints aggregating to the
// same coarse vertex) and merge parallel edges by summing their weight
// rows. Coarse vertex weights sum contained fine weights. Coordinates, if
// present, are inherited from the lowest-index fine vertex mapping to each
// coarse vertex.
//
// Hypergraphs: each fine hyperedge projects to the set of distinct coarse
// vertices its endpoints map to; projections of size 0 or 1 are dropped.
// Surviving hyperedges are not merged even when two fine hyperedges
// project to the same coarse set; the lambda-1 cut of the projection is
// unchanged either way.
func Coarsen(ms *ModelSet, aggregation []int) (*ModelSet, error) {
	if len(aggregation) != ms.Topology.NbrN {
		return nil, wrapErr(partkit.KindInvalidInput, "Coarsen",
			fmt.Errorf("%w: aggregation has %d entries, want %d", ErrDimensionMismatch, len(aggregation), ms.Topology.NbrN))
	}
	nbrCoarse := 0
	seen := make([]bool, ms.Topology.NbrN+1)
	for _, c := range aggregation {
		if c < 0 || c >= len(seen) {
			return nil, wrapErr(partkit.KindInvalidInput, "Coarsen", ErrEmptyAggregation)
		}
		seen[c] = true
		if c+1 > nbrCoarse {
			nbrCoarse = c + 1
		}
	}
	for c := 0; c < nbrCoarse; c++ {
		if !seen[c] {
			return nil, wrapErr(partkit.KindInvalidInput, "Coarsen", ErrEmptyAggregation)
		}
	}
	if nbrCoarse == 0 {
		return nil, wrapErr(partkit.KindInvariantViolation, "Coarsen",
			fmt.Errorf("%w: coarsening produced zero vertices", ErrEmptyAggregation))
	}

	coarseVW := coarsenVertexWeights(ms.VertexWeights, aggregation, nbrCoarse)

	var coarseTopo *Topology
	var coarseEW *Weights
	var err error
	if ms.Topology.Kind == KindGraph {
		coarseTopo, coarseEW, err = coarsenGraph(ms.Topology, ms.EdgeWeights, aggregation, nbrCoarse)
	} else {
		coarseTopo, coarseEW, err = coarsenHypergraph(ms.Topology, ms.HyperedgeWeights, aggregation, nbrCoarse)
	}
	if err != nil {
		return nil, err
	}
	coarseTopo.Dim = ms.Topology.Dim
	if ms.Topology.Coords != nil {
		coarseTopo.Coords = coarsenCoords(ms.Topology.Coords, aggregation, nbrCoarse)
	}

	coarsePart := make([]int, nbrCoarse)
	part, err := NewPartition(coarsePart, nbrCoarse, ms.Partition.NbrP)
	if err != nil {
		return nil, err
	}

	out := &ModelSet{Topology: coarseTopo, VertexWeights: coarseVW, Partition: part, Targets: ms.Targets}
	if coarseTopo.Kind == KindGraph {
		out.EdgeWeights = coarseEW
	} else {
		out.HyperedgeWeights = coarseEW
	}
	return out, nil
}

func coarsenVertexWeights(vw *Weights, aggregation []int, nbrCoarse int) *Weights {
	matrix := make([][]float64, nbrCoarse)
	for i := range matrix {
		matrix[i] = make([]float64, vw.NbrC)
	}
	for i, row := range vw.Matrix {
		c := aggregation[i]
		for k, v := range row {
			matrix[c][k] += v
		}
	}
	totals := make([]float64, vw.NbrC)
	copy(totals, vw.Totals)
	return &Weights{Matrix: matrix, Totals: totals, NbrC: vw.NbrC}
}

func coarsenCoords(coords [][]float64, aggregation []int, nbrCoarse int) [][]float64 {
	out := make([][]float64, nbrCoarse)
	for i, c := range aggregation {
		if out[c] == nil {
			out[c] = coords[i]
		}
	}
	return out
}

type edgeKey struct{ a, b int }

func coarsenGraph(topo *Topology, ew *Weights, aggregation []int, nbrCoarse int) (*Topology, *Weights, error) {
	index := make(map[edgeKey]int)
	var edges [][2]int
	var rows [][]float64
	for e, ends := range topo.Edges {
		u, v := aggregation[ends[0]], aggregation[ends[1]]
		if u == v {
			continue // collapse self-loop
		}
		if u > v {
			u, v = v, u
		}
		key := edgeKey{u, v}
		if idx, ok := index[key]; ok {
			addRow(rows[idx], ew.Matrix[e])
		} else {
			index[key] = len(edges)
			edges = append(edges, [2]int{u, v})
			row := make([]float64, ew.NbrC)
			addRow(row, ew.Matrix[e])
			rows = append(rows, row)
		}
	}
	topoOut, err := NewGraphTopology(nbrCoarse, edges)
	if err != nil {
		return nil, nil, err
	}
	weightsOut, err := NewEdgeWeights(rows)
	if err != nil {
		return nil, nil, err
	}
	return topoOut, weightsOut, nil
}

func addRow(dst, src []float64) {
	for c, v := range src {
		dst[c] += v
	}
}

func coarsenHypergraph(topo *Topology, hw *Weights, aggregation []int, nbrCoarse int) (*Topology, *Weights, error) {
	var edges [][]int
	var rows [][]float64
	for e, ends := range topo.Edges {
		seen := make(map[int]bool, len(ends))
		var proj []int
		for _, u := range ends {
			c := aggregation[u]
			if !seen[c] {
				seen[c] = true
				proj = append(proj, c)
			}
		}
		if len(proj) < 2 {
			continue
		}
		edges = append(edges, proj)
		row := make([]float64, hw.NbrC)
		copy(row, hw.Matrix[e])
		rows = append(rows, row)
	}
	topoOut, err := NewHypergraphTopology(nbrCoarse, edges)
	if err != nil {
		return nil, nil, err
	}
	weightsOut, err := NewHyperedgeWeights(rows)
	if err != nil {
		return nil, nil, err
	}
	return topoOut, weightsOut, nil
}
