// Package objective computes the cut-style partitioning objective and the
// per-criterion imbalance, both from scratch and incrementally after a
// hypothetical single-vertex move.
package objective

import (
	"math"

	"github.com/katalvlaran/partkit/core"
)

// entityWeight returns the scalar weight of edge e: edge/hyperedge weights
// in this domain carry exactly one balancing criterion (column 0); only
// vertex weights are genuinely vector-valued across criteria.
func entityWeight(ew *core.Weights, e int) float64 {
	return ew.Matrix[e][0]
}

// distinctParts returns the number of distinct parts occupied by ends.
func distinctParts(part *core.Partition, ends []int) int {
	seen := make(map[int]struct{}, len(ends))
	for _, v := range ends {
		seen[part.Parts[v]] = struct{}{}
	}
	return len(seen)
}

// CutLambdaMinusOne computes the total lambda-1 cut of topo under part: for
// each edge of weight w whose endpoints occupy lambda distinct parts, it
// contributes w*(lambda-1); for a graph this reduces to the familiar
// Sum_e w_e * [parts[u] != parts[v]].
func CutLambdaMinusOne(topo *core.Topology, ew *core.Weights, part *core.Partition) int64 {
	var total float64
	for e, ends := range topo.Edges {
		lambda := distinctParts(part, ends)
		if lambda <= 1 {
			continue
		}
		total += entityWeight(ew, e) * float64(lambda-1)
	}
	return int64(math.Round(total))
}

// GraphCutGain returns the incremental cut gain of moving graph vertex i
// from its current part to pTgt: old - new, where old/new sum w_e over
// i's incident edges whose other endpoint disagrees with i's current/
// hypothetical part respectively.
func GraphCutGain(topo *core.Topology, ew *core.Weights, part *core.Partition, i, pTgt int) int64 {
	pSrc := part.Parts[i]
	var oldCost, newCost float64
	for _, inc := range topo.Adjacency[i] {
		w := entityWeight(ew, inc.Edge)
		pj := part.Parts[inc.Neighbor]
		if pj != pSrc {
			oldCost += w
		}
		if pj != pTgt {
			newCost += w
		}
	}
	return int64(math.Round(oldCost - newCost))
}

// HypergraphCutGain returns the incremental lambda-1 cut gain of moving
// hypergraph vertex i from its current part to pTgt, by recomputing lambda
// for each hyperedge incident to i before and after the hypothetical move
// and summing w*delta(lambda-1).
func HypergraphCutGain(topo *core.Topology, hw *core.Weights, part *core.Partition, i, pTgt int) int64 {
	pSrc := part.Parts[i]
	if pSrc == pTgt {
		return 0
	}
	incident := make(map[int]struct{})
	for _, inc := range topo.Adjacency[i] {
		incident[inc.Edge] = struct{}{}
	}
	var gain float64
	for e := range incident {
		ends := topo.Edges[e]
		before := distinctParts(part, ends)

		part.Parts[i] = pTgt
		after := distinctParts(part, ends)
		part.Parts[i] = pSrc

		w := entityWeight(hw, e)
		gain += w * float64((before - 1) - (after - 1))
	}
	return int64(math.Round(gain))
}
