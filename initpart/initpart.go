// Package initpart provides the trivial initial partitioners the
// multilevel and refinement phases start from.
package initpart

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/core"
)

// Sentinel errors for the initial partitioners.
var (
	// ErrPartOutOfRange indicates AllInOne was asked to place vertices in a
	// part index outside [0, nbr_p).
	ErrPartOutOfRange = errors.New("initpart: part index out of range")

	// ErrNilRand indicates Random was called without a random source.
	ErrNilRand = errors.New("initpart: nil *rand.Rand")
)

type errKind struct {
	kind partkit.Kind
	err  error
}

func wrapErr(kind partkit.Kind, err error) error { return &errKind{kind: kind, err: err} }

func (e *errKind) Error() string { return e.err.Error() }
func (e *errKind) Unwrap() error { return e.err }
func (e *errKind) Kind() partkit.Kind { return e.kind }

// AllInOne assigns every vertex to part, keeping the partition's nbr_p
// unchanged. The result always has cut 0.
func AllInOne(ms *core.ModelSet, part int) error {
	if part < 0 || part >= ms.Partition.NbrP {
		return wrapErr(partkit.KindInvariantViolation,
			fmt.Errorf("%w: part = %d, nbr_p = %d", ErrPartOutOfRange, part, ms.Partition.NbrP))
	}
	for i := range ms.Partition.Parts {
		ms.Partition.Parts[i] = part
	}
	return nil
}

// Random assigns each vertex a part drawn uniformly from [0, nbr_p).
func Random(ms *core.ModelSet, rng *rand.Rand) error {
	if rng == nil {
		return wrapErr(partkit.KindMissingArgument, ErrNilRand)
	}
	nbrP := ms.Partition.NbrP
	for i := range ms.Partition.Parts {
		ms.Partition.Parts[i] = rng.Intn(nbrP)
	}
	return nil
}
