package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/partkit"
)

// Weights is the shared shape for vertex, graph-edge and hyperedge weights:
// a matrix weights[i][c] for i in [0, nbrI) and c in [0, nbrC), plus the
// per-criterion totals. nbrI is len(Matrix); it is the vertex count for
// vertex weights and the edge count for edge/hyperedge weights.
type Weights struct {
	Matrix [][]float64
	Totals []float64
	NbrC   int
}

func newWeights(op string, matrix [][]float64) (*Weights, error) {
	if len(matrix) == 0 {
		return &Weights{Matrix: matrix, Totals: []float64{}, NbrC: 0}, nil
	}
	nbrC := len(matrix[0])
	totals := make([]float64, nbrC)
	for i, row := range matrix {
		if len(row) != nbrC {
			return nil, wrapErr(partkit.KindInvalidInput, op,
				fmt.Errorf("%w: row %d has %d criteria, want %d", ErrDimensionMismatch, i, len(row), nbrC))
		}
		for c, w := range row {
			if w < 0 {
				return nil, wrapErr(partkit.KindInvalidInput, op,
					fmt.Errorf("%w: entry [%d][%d] = %v", ErrNegativeWeight, i, c, w))
			}
			totals[c] += w
		}
	}
	return &Weights{Matrix: matrix, Totals: totals, NbrC: nbrC}, nil
}

// NewVertexWeights builds vertex weights from an explicit matrix, one row
// per vertex.
func NewVertexWeights(matrix [][]float64) (*Weights, error) {
	return newWeights("NewVertexWeights", matrix)
}

// NewEdgeWeights builds graph-edge weights from an explicit matrix, one row
// per edge. FM requires these to be integral so gain arithmetic stays
// exact; callers that will feed this into fm.New should check IsInteger
// first, or let fm.New surface fm.ErrNonIntegerEdgeWeight itself.
func NewEdgeWeights(matrix [][]float64) (*Weights, error) {
	return newWeights("NewEdgeWeights", matrix)
}

// NewHyperedgeWeights builds hyperedge weights from an explicit matrix, one
// row per hyperedge.
func NewHyperedgeWeights(matrix [][]float64) (*Weights, error) {
	return newWeights("NewHyperedgeWeights", matrix)
}

// NewUniformWeights fills a unit weight for every (entity, criterion) pair,
// used by loaders and tests that don't supply an explicit weighting.
func NewUniformWeights(nbrI, nbrC int) *Weights {
	if nbrC < 1 {
		nbrC = 1
	}
	matrix := make([][]float64, nbrI)
	for i := range matrix {
		row := make([]float64, nbrC)
		for c := range row {
			row[c] = 1
		}
		matrix[i] = row
	}
	totals := make([]float64, nbrC)
	for c := range totals {
		totals[c] = float64(nbrI)
	}
	return &Weights{Matrix: matrix, Totals: totals, NbrC: nbrC}
}

// IsInteger reports whether every entry of the matrix is a whole number,
// the precondition FM imposes on edge weights.
func (w *Weights) IsInteger() bool {
	for _, row := range w.Matrix {
		for _, v := range row {
			if v != math.Trunc(v) {
				return false
			}
		}
	}
	return true
}

// ValidateTotals recomputes totals from Matrix and compares against
// Totals; the two must agree after every operation.
func (w *Weights) ValidateTotals() error {
	if w.NbrC == 0 {
		return nil
	}
	got := make([]float64, w.NbrC)
	for _, row := range w.Matrix {
		for c, v := range row {
			got[c] += v
		}
	}
	const eps = 1e-9
	for c := range got {
		if math.Abs(got[c]-w.Totals[c]) > eps {
			return wrapErr(partkit.KindInvariantViolation, "ValidateTotals",
				fmt.Errorf("%w: criterion %d: got %v, want %v", ErrInconsistentTotals, c, got[c], w.Totals[c]))
		}
	}
	return nil
}
