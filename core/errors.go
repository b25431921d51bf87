package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/partkit"
)

// Sentinel errors for the data model. Every exported constructor and
// mutator wraps one of these with context via %w.
var (
	// ErrNegativeCount indicates a negative nbr_n, nbr_e, nbr_c or nbr_p.
	ErrNegativeCount = errors.New("core: negative count")

	// ErrDimensionMismatch indicates a matrix/slice whose shape does not
	// match the declared counts.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrNegativeWeight indicates a weight entry below zero.
	ErrNegativeWeight = errors.New("core: negative weight")

	// ErrNonIntegerWeight indicates a weight entry with a non-integral
	// value where integer weights are required (edge weights, for FM).
	ErrNonIntegerWeight = errors.New("core: non-integer weight")

	// ErrInconsistentTotals indicates totals[c] != sum_i weights[i][c].
	ErrInconsistentTotals = errors.New("core: inconsistent totals")

	// ErrInvalidEdge indicates an edge references a vertex id out of range,
	// or (for graphs) does not have exactly two endpoints.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrDanglingAdjacency indicates a vertex's adjacency references an
	// edge id absent from the edges table, or not incident to that vertex.
	ErrDanglingAdjacency = errors.New("core: dangling adjacency entry")

	// ErrPartitionOutOfRange indicates a part index outside [0, nbr_p).
	ErrPartitionOutOfRange = errors.New("core: partition index out of range")

	// ErrPartitionSizeMismatch indicates len(parts) != nbr_n.
	ErrPartitionSizeMismatch = errors.New("core: partition size mismatch")

	// ErrTargetsNotNormalized indicates sum_p targets[c][p] != 1 for some c.
	ErrTargetsNotNormalized = errors.New("core: targets do not sum to one")

	// ErrEmptyAggregation indicates an aggregation vector whose image is
	// not surjective onto [0, nbr_coarse), or that collapses to zero
	// vertices.
	ErrEmptyAggregation = errors.New("core: aggregation is not a valid surjection")

	// ErrWrongTopologyKind indicates an operation was given a graph where
	// a hypergraph was required, or vice versa.
	ErrWrongTopologyKind = errors.New("core: wrong topology kind")
)

// errKind wraps a sentinel error with its partkit.Kind and free-form
// context, implementing partkit.Classified.
type errKind struct {
	kind partkit.Kind
	op   string
	err  error
}

func wrapErr(kind partkit.Kind, op string, err error) error {
	return &errKind{kind: kind, op: op, err: err}
}

func (e *errKind) Error() string { return fmt.Sprintf("core: %s: %v", e.op, e.err) }
func (e *errKind) Unwrap() error { return e.err }
func (e *errKind) Kind() partkit.Kind { return e.kind }
