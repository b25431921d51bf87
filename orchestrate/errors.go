package orchestrate

import (
	"errors"

	"github.com/katalvlaran/partkit"
)

// Sentinel errors for the orchestrator.
var (
	// ErrNilAlgo indicates a phase with no algorithm body.
	ErrNilAlgo = errors.New("orchestrate: phase has nil algo")

	// ErrPhaseOutOfRange indicates a next/alt index outside the phase list
	// (and distinct from End).
	ErrPhaseOutOfRange = errors.New("orchestrate: phase index out of range")

	// ErrMissingCombine indicates an Alt with several conditions but no
	// Combine to fold them.
	ErrMissingCombine = errors.New("orchestrate: multi-condition alternative without combine")

	// ErrNoTrials indicates a Repeat with NbrTests < 1.
	ErrNoTrials = errors.New("orchestrate: repeat needs at least one trial")

	// ErrEmptyStack indicates a phase body that requires at least one level
	// was run on an empty stack.
	ErrEmptyStack = errors.New("orchestrate: empty multilevel stack")
)

type errKind struct {
	kind partkit.Kind
	err  error
}

func wrapErr(kind partkit.Kind, err error) error { return &errKind{kind: kind, err: err} }

func (e *errKind) Error() string { return e.err.Error() }
func (e *errKind) Unwrap() error { return e.err }
func (e *errKind) Kind() partkit.Kind { return e.kind }
