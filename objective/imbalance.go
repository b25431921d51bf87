package objective

import "github.com/katalvlaran/partkit/core"

// Imbalances computes the full imb[c][p] matrix from scratch. It is a thin
// re-export of core.Imbalance: the from-scratch builder lives in core
// because constraint.Imbalance needs it too.
func Imbalances(ms *core.ModelSet, targets *core.Targets) [][]float64 {
	return core.Imbalance(ms, targets)
}

// MaxImbalance returns max_{c,p} imb[c][p], the aggregate imbalance.
func MaxImbalance(imbs [][]float64) float64 {
	max := 0.0
	first := true
	for _, row := range imbs {
		for _, v := range row {
			if first || v > max {
				max = v
				first = false
			}
		}
	}
	return max
}

// ImbalancesAfterMove returns a new imb matrix reflecting the after-move
// update: moving a vertex with normalized weights w[c] from pSrc to pTgt
// changes imb[c][pSrc] -= nbrP*w[c] and imb[c][pTgt] += nbrP*w[c], leaving
// every other entry untouched. imbs is not mutated.
func ImbalancesAfterMove(normW []float64, pSrc, pTgt, nbrP int, imbs [][]float64) [][]float64 {
	out := make([][]float64, len(imbs))
	for c, row := range imbs {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[c] = cp
	}
	for c, w := range normW {
		delta := float64(nbrP) * w
		out[c][pSrc] -= delta
		out[c][pTgt] += delta
	}
	return out
}
