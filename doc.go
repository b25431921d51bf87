// Package partkit is a graph/hypergraph partitioning engine: it splits the
// vertices of a weighted graph or hypergraph into a fixed number of disjoint
// parts, minimizing a cut-style objective under per-criterion imbalance
// (load-balance) constraints. It is a library for offline, preprocessing-time
// partitioning ahead of parallel numerical simulation, not a runtime
// partitioner and not a file-format toolkit.
//
// The engine is organized one package per concern, composed by value,
// with no hidden globals.
//
//	core/        — topology, weights, partition, targets, the multilevel stack
//	objective/   — cut and imbalance evaluation (from-scratch and incremental)
//	constraint/  — the imbalance admissibility predicate used by FM
//	fmgain/      — the FM cut gain table (bipartition and k-way)
//	fm/          — the Fiduccia-Mattheyses refiner (outer/inner loop, rollback)
//	vngain/      — the vector-of-numbers imbalance gain table
//	vnrefine/    — VN "first improvement" and "best gain" refiners
//	multilevel/  — matching-based coarsening, recursion, prolongation
//	initpart/    — trivial initial partitioners (all-in-one, random)
//	orchestrate/ — phase sequencing with fork/repeat conditions
//
// File-format readers/writers, plotting, CLI parsing and a YAML-driven task
// runner are explicitly out of scope: their only contract with this module
// is the data model in core.
//
//	go get github.com/katalvlaran/partkit
package partkit

// Kind categorizes the sentinel errors exposed by every sub-package, so an
// orchestrator can branch on error category without string matching.
type Kind int

const (
	// KindInvalidInput marks malformed data: negative counts, nonconforming
	// dimensions, inconsistent totals.
	KindInvalidInput Kind = iota

	// KindMissingArgument marks a required algorithm argument left unset,
	// e.g. the target part count.
	KindMissingArgument

	// KindUnsupportedOption marks an unknown algorithm name, format bit,
	// restriction flavor, or similar enum value outside its domain.
	KindUnsupportedOption

	// KindInvariantViolation marks a broken structural invariant: FM called
	// with non-integer edge weights, coarsening collapsing to zero vertices,
	// a partition index out of range.
	KindInvariantViolation
)

// String renders the Kind for diagnostics and log lines.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindMissingArgument:
		return "missing_argument"
	case KindUnsupportedOption:
		return "unsupported_option"
	case KindInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

// Classified is implemented by every package-level wrapped error, letting
// callers recover the Kind via errors.As without string matching:
//
//	var ce partkit.Classified
//	if errors.As(err, &ce) { switch ce.Kind() { ... } }
type Classified interface {
	error
	Kind() Kind
}

// kindError is the wrapper WithKind builds: it pairs a sentinel error with
// its Kind and supports errors.Unwrap.
type kindError struct {
	kind Kind
	err  error
}

// WithKind wraps err so it satisfies Classified, reporting kind. The
// sub-packages do not call it: each defines its own errKind wrapper that
// satisfies Classified the same way.
func WithKind(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }
func (e *kindError) Kind() Kind    { return e.kind }
