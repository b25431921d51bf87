package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/partkit"
)

// Targets holds the desired per-criterion, per-part weight fraction:
// Matrix[c][p] in [0,1], summing to 1 across p for every c.
type Targets struct {
	Matrix [][]float64
}

// NewUniformTargets builds the default target matrix: 1/nbrP for every
// (criterion, part).
func NewUniformTargets(nbrC, nbrP int) *Targets {
	if nbrC < 1 {
		nbrC = 1
	}
	if nbrP < 1 {
		nbrP = 1
	}
	m := make([][]float64, nbrC)
	share := 1.0 / float64(nbrP)
	for c := range m {
		row := make([]float64, nbrP)
		for p := range row {
			row[p] = share
		}
		m[c] = row
	}
	return &Targets{Matrix: m}
}

// NewTargets validates an explicit target matrix and returns it.
func NewTargets(matrix [][]float64) (*Targets, error) {
	const eps = 1e-6
	for c, row := range matrix {
		var sum float64
		for _, v := range row {
			if v < 0 || v > 1 {
				return nil, wrapErr(partkit.KindInvalidInput, "NewTargets",
					fmt.Errorf("%w: targets[%d] entries must be in [0,1]", ErrInvalidEdge, c))
			}
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return nil, wrapErr(partkit.KindInvalidInput, "NewTargets",
				fmt.Errorf("%w: criterion %d sums to %v", ErrTargetsNotNormalized, c, sum))
		}
	}
	return &Targets{Matrix: matrix}, nil
}
