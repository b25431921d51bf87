package multilevel

import (
	"errors"

	"github.com/katalvlaran/partkit"
)

// Sentinel errors for the multilevel driver.
var (
	// ErrEmptyStack indicates ProlongOne or Recurse was given a stack with
	// fewer levels than the operation requires.
	ErrEmptyStack = errors.New("multilevel: stack has too few levels")

	// ErrNoAggregation indicates ProlongOne was asked to project parts
	// through a level that was never coarsened (Aggregation is nil).
	ErrNoAggregation = errors.New("multilevel: level has no aggregation to prolong through")
)

type errKind struct {
	kind partkit.Kind
	err  error
}

func wrapErr(kind partkit.Kind, err error) error { return &errKind{kind: kind, err: err} }

func (e *errKind) Error() string { return "multilevel: " + e.err.Error() }
func (e *errKind) Unwrap() error { return e.err }
func (e *errKind) Kind() partkit.Kind { return e.kind }
