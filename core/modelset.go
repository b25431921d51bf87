package core

import (
	"fmt"

	"github.com/katalvlaran/partkit"
)

// ModelSet bundles one consistent view of topology, weights, partition and
// targets. Exactly one of EdgeWeights / HyperedgeWeights is set, matching
// Topology.Kind.
type ModelSet struct {
	Topology         *Topology
	VertexWeights    *Weights
	EdgeWeights      *Weights // graphs only
	HyperedgeWeights *Weights // hypergraphs only
	Partition        *Partition
	Targets          *Targets
}

// NewModelSet validates shapes across all five members and returns a
// ModelSet, or an error naming the first inconsistency found.
func NewModelSet(topo *Topology, vw *Weights, ew *Weights, part *Partition, targets *Targets) (*ModelSet, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	if len(vw.Matrix) != topo.NbrN {
		return nil, wrapErr(partkit.KindInvalidInput, "NewModelSet",
			fmt.Errorf("%w: vertex weights has %d rows, want %d", ErrDimensionMismatch, len(vw.Matrix), topo.NbrN))
	}
	if len(ew.Matrix) != topo.NbrE {
		return nil, wrapErr(partkit.KindInvalidInput, "NewModelSet",
			fmt.Errorf("%w: edge weights has %d rows, want %d", ErrDimensionMismatch, len(ew.Matrix), topo.NbrE))
	}
	if len(part.Parts) != topo.NbrN {
		return nil, wrapErr(partkit.KindInvariantViolation, "NewModelSet", ErrPartitionSizeMismatch)
	}
	if len(targets.Matrix) != vw.NbrC {
		return nil, wrapErr(partkit.KindInvalidInput, "NewModelSet",
			fmt.Errorf("%w: targets has %d criteria rows, want %d", ErrDimensionMismatch, len(targets.Matrix), vw.NbrC))
	}
	ms := &ModelSet{Topology: topo, VertexWeights: vw, Partition: part, Targets: targets}
	if topo.Kind == KindGraph {
		ms.EdgeWeights = ew
	} else {
		ms.HyperedgeWeights = ew
	}
	return ms, nil
}

// EntityWeights returns the weight object keyed to the edges of this
// topology: EdgeWeights for a graph, HyperedgeWeights for a hypergraph.
func (ms *ModelSet) EntityWeights() *Weights {
	if ms.Topology.Kind == KindGraph {
		return ms.EdgeWeights
	}
	return ms.HyperedgeWeights
}

// NbrC returns the number of balancing criteria.
func (ms *ModelSet) NbrC() int { return ms.VertexWeights.NbrC }

// NormWeight returns vertex i's weight on criterion c, normalized by that
// criterion's total -- the w_normalized term used throughout §4.
func (ms *ModelSet) NormWeight(i, c int) float64 {
	total := ms.VertexWeights.Totals[c]
	if total == 0 {
		return 0
	}
	return ms.VertexWeights.Matrix[i][c] / total
}

// Imbalance computes the full imb[c][p] matrix from scratch:
// imb[c][p] = nbrP * (weight_cp/total_c - targets[c][p]).
func Imbalance(ms *ModelSet, targets *Targets) [][]float64 {
	nbrC := ms.NbrC()
	nbrP := ms.Partition.NbrP
	weightCP := make([][]float64, nbrC)
	for c := range weightCP {
		weightCP[c] = make([]float64, nbrP)
	}
	for i, p := range ms.Partition.Parts {
		for c := 0; c < nbrC; c++ {
			weightCP[c][p] += ms.VertexWeights.Matrix[i][c]
		}
	}
	imb := make([][]float64, nbrC)
	for c := 0; c < nbrC; c++ {
		imb[c] = make([]float64, nbrP)
		total := ms.VertexWeights.Totals[c]
		for p := 0; p < nbrP; p++ {
			var frac float64
			if total != 0 {
				frac = weightCP[c][p] / total
			}
			imb[c][p] = float64(nbrP) * (frac - targets.Matrix[c][p])
		}
	}
	return imb
}

// Level is one entry of the multilevel stack: a model snapshot plus the
// aggregation that produced the next (coarser) level. Aggregation is nil on
// the coarsest level of a stack (there is no next level to map into).
type Level struct {
	Models      *ModelSet
	Aggregation []int
}

// Stack is the multilevel stack, finest at index 0.
type Stack []*Level
