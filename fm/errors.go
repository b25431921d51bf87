package fm

import (
	"errors"

	"github.com/katalvlaran/partkit"
)

// Sentinel errors for the FM refiner.
var (
	// ErrNonIntegerEdgeWeight indicates fm.New was given edge weights that
	// are not all integral; FM's gain arithmetic requires exact integers.
	ErrNonIntegerEdgeWeight = errors.New("fm: edge weights must be integers")

	// ErrHypergraphUnsupported indicates fm.New was given a hypergraph
	// topology; the FM cut gain table in this module is specialized for
	// graphs, whose gain update is pairwise.
	ErrHypergraphUnsupported = errors.New("fm: hypergraph topology is not supported")
)

type errKind struct {
	kind partkit.Kind
	err  error
}

func wrapErr(kind partkit.Kind, err error) error { return &errKind{kind: kind, err: err} }

func (e *errKind) Error() string { return "fm: " + e.err.Error() }
func (e *errKind) Unwrap() error { return e.err }
func (e *errKind) Kind() partkit.Kind { return e.kind }
