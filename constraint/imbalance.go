// Package constraint maintains the incremental imbalance state FM's move
// selection consults to decide whether a candidate move is admissible.
package constraint

import "github.com/katalvlaran/partkit/core"

// Imbalance maintains a working imb matrix and a per-criterion tolerance
// vector, offering the admissibility predicate FM uses during move
// selection.
type Imbalance struct {
	NormWeights [][]float64 // NormWeights[i][c]
	NbrP        int
	Tolerances  []float64
	Imb         [][]float64 // Imb[c][p]
}

// NewImbalance builds the constraint state from a model set's current
// partition and the given per-criterion tolerances.
func NewImbalance(ms *core.ModelSet, targets *core.Targets, tol []float64) *Imbalance {
	nbrN := ms.Topology.NbrN
	nbrC := ms.NbrC()
	normW := make([][]float64, nbrN)
	for i := 0; i < nbrN; i++ {
		row := make([]float64, nbrC)
		for c := 0; c < nbrC; c++ {
			row[c] = ms.NormWeight(i, c)
		}
		normW[i] = row
	}
	return &Imbalance{
		NormWeights: normW,
		NbrP:        ms.Partition.NbrP,
		Tolerances:  tol,
		Imb:         core.Imbalance(ms, targets),
	}
}

// CanMove reports whether moving vertex i from pSrc to pTgt is admissible:
// for every criterion c, imb[c][pTgt] + nbrP*w_normalized[i][c] must not
// exceed tol[c]. pSrc is accepted for symmetry with the caller's signature
// but does not participate in the predicate.
func (ib *Imbalance) CanMove(i, pSrc, pTgt int) bool {
	_ = pSrc
	for c, w := range ib.NormWeights[i] {
		if ib.Imb[c][pTgt]+float64(ib.NbrP)*w > ib.Tolerances[c] {
			return false
		}
	}
	return true
}

// Moved applies the after-move update to the working imb matrix:
// imb[c][pSrc] -= nbrP*w and imb[c][pTgt] += nbrP*w per criterion; no
// other entry changes.
func (ib *Imbalance) Moved(i, pSrc, pTgt int) {
	for c, w := range ib.NormWeights[i] {
		delta := float64(ib.NbrP) * w
		ib.Imb[c][pSrc] -= delta
		ib.Imb[c][pTgt] += delta
	}
}

// Snapshot deep-copies only the Imb matrix, sharing NormWeights and
// Tolerances with the receiver; it is what FM's rollback-to-best keeps.
func (ib *Imbalance) Snapshot() *Imbalance {
	imb := make([][]float64, len(ib.Imb))
	for c, row := range ib.Imb {
		cp := make([]float64, len(row))
		copy(cp, row)
		imb[c] = cp
	}
	return &Imbalance{
		NormWeights: ib.NormWeights,
		NbrP:        ib.NbrP,
		Tolerances:  ib.Tolerances,
		Imb:         imb,
	}
}

// Restore replaces ib's Imb matrix with other's, used by FM to swap in a
// previously snapshotted state without reallocating NormWeights/Tolerances.
func (ib *Imbalance) Restore(other *Imbalance) {
	ib.Imb = other.Imb
}
