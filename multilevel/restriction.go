package multilevel

import "github.com/katalvlaran/partkit/core"

// Restriction reports whether merging the given candidate vertex ids into
// one coarse vertex is allowed.
type Restriction func(candidates []int) bool

// And composes restrictions conjunctively: the merge is allowed only when
// every rs agrees.
func And(rs ...Restriction) Restriction {
	return func(candidates []int) bool {
		for _, r := range rs {
			if !r(candidates) {
				return false
			}
		}
		return true
	}
}

// NWeightsKind selects which of the four restrict_nweights flavors
// NWeightsRestriction implements.
type NWeightsKind int

const (
	// AboveAny allows the merge iff the candidates' combined weight
	// exceeds wMax on at least one criterion.
	AboveAny NWeightsKind = iota
	// AboveAll allows the merge iff the combined weight exceeds wMax on
	// every criterion.
	AboveAll
	// UnderAny allows the merge iff the combined weight stays at or below
	// wMax on at least one criterion.
	UnderAny
	// UnderAll allows the merge iff the combined weight stays at or below
	// wMax on every criterion -- the standard "don't grow coarse vertices
	// past a cap" restriction. Matchers apply it only when it is passed in.
	UnderAll
)

// NWeightsRestriction builds a Restriction testing the candidates'
// combined vertex weight (summed per criterion) against wMax, per the
// flavor selected by kind.
func NWeightsRestriction(kind NWeightsKind, wMax float64, nw *core.Weights) Restriction {
	return func(candidates []int) bool {
		sums := make([]float64, nw.NbrC)
		for _, i := range candidates {
			for c, v := range nw.Matrix[i] {
				sums[c] += v
			}
		}
		switch kind {
		case AboveAny:
			for _, s := range sums {
				if s > wMax {
					return true
				}
			}
			return len(sums) == 0
		case AboveAll:
			for _, s := range sums {
				if s <= wMax {
					return false
				}
			}
			return true
		case UnderAny:
			for _, s := range sums {
				if s <= wMax {
					return true
				}
			}
			return len(sums) == 0
		default: // UnderAll
			for _, s := range sums {
				if s > wMax {
					return false
				}
			}
			return true
		}
	}
}
