package orchestrate

import (
	"context"
	"fmt"

	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/constraint"
	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/fm"
	"github.com/katalvlaran/partkit/initpart"
	"github.com/katalvlaran/partkit/multilevel"
	"github.com/katalvlaran/partkit/vnrefine"
)

// The canned phase bodies below each wrap one library operation over the
// coarsest level of the stack. Anything not covered here is a one-line
// AlgoFunc away.

func topLevel(stack *core.Stack) (*core.Level, error) {
	s := *stack
	if len(s) == 0 {
		return nil, wrapErr(partkit.KindInvariantViolation, ErrEmptyStack)
	}
	return s[len(s)-1], nil
}

// AllInOne places every vertex of the coarsest level in part.
func AllInOne(part int) Algo {
	return AlgoFunc(func(stack *core.Stack, _ *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		return initpart.AllInOne(top.Models, part)
	})
}

// RandomPart assigns uniformly random parts on the coarsest level,
// drawing from the orchestrator's stream.
func RandomPart() Algo {
	return AlgoFunc(func(stack *core.Stack, rec *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		return initpart.Random(top.Models, rec.Rand())
	})
}

// RefineFM runs FM cut refinement on the coarsest level under the given
// per-criterion tolerances.
func RefineFM(tol []float64, opts ...fm.Option) Algo {
	return AlgoFunc(func(stack *core.Stack, _ *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		ms := top.Models
		c := constraint.NewImbalance(ms, ms.Targets, tol)
		r, err := fm.New(ms, ms.EntityWeights(), c, opts...)
		if err != nil {
			return err
		}
		_, err = r.Run(context.Background())
		return err
	})
}

// RefineVNFirst runs the first-improvement balance refiner on the
// coarsest level.
func RefineVNFirst(opts ...vnrefine.FirstOption) Algo {
	return AlgoFunc(func(stack *core.Stack, _ *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		_, err = vnrefine.First(top.Models, top.Models.Targets, opts...)
		return err
	})
}

// RefineVNFirstRandom is RefineVNFirst with the vertex scan order drawn
// from the orchestrator's stream.
func RefineVNFirstRandom() Algo {
	return AlgoFunc(func(stack *core.Stack, rec *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		_, err = vnrefine.First(top.Models, top.Models.Targets, vnrefine.WithRand(rec.Rand()))
		return err
	})
}

// RefineVNBest runs the best-gain balance refiner on the coarsest level.
func RefineVNBest() Algo {
	return AlgoFunc(func(stack *core.Stack, _ *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		vnrefine.Best(top.Models, top.Models.Targets)
		return nil
	})
}

// OrderKind names the vertex order a CoarsenStep scans.
type OrderKind int

const (
	// OrderIdentity scans vertices in index order.
	OrderIdentity OrderKind = iota
	// OrderRandom scans a permutation drawn from the orchestrator's stream.
	OrderRandom
)

// MatcherKind names the matcher a CoarsenStep pairs vertices with.
type MatcherKind int

const (
	// MatcherFirst is match_first.
	MatcherFirst MatcherKind = iota
	// MatcherHEM is heavy-edge matching.
	MatcherHEM
	// MatcherRandom pairs with a random unmatched neighbor, drawing from
	// the orchestrator's stream.
	MatcherRandom
)

// CoarsenStep coarsens the stack by one level using the named order and
// matcher under restrict (nil allows every merge). Loop it with a
// NumberOfNodes fork to coarsen to a threshold.
func CoarsenStep(order OrderKind, matcher MatcherKind, restrict multilevel.Restriction) Algo {
	return AlgoFunc(func(stack *core.Stack, rec *Records) error {
		top, err := topLevel(stack)
		if err != nil {
			return err
		}
		var ord multilevel.Order
		switch order {
		case OrderIdentity:
			ord = multilevel.Identity
		case OrderRandom:
			ord = multilevel.Random(rec.Rand())
		default:
			return wrapErr(partkit.KindUnsupportedOption, fmt.Errorf("orchestrate: unknown order kind %d", order))
		}
		var m multilevel.Matcher
		switch matcher {
		case MatcherFirst:
			m = multilevel.MatchFirst()
		case MatcherHEM:
			m = multilevel.MatchHEM()
		case MatcherRandom:
			m = multilevel.MatchRandom(rec.Rand())
		default:
			return wrapErr(partkit.KindUnsupportedOption, fmt.Errorf("orchestrate: unknown matcher kind %d", matcher))
		}
		next, err := multilevel.CoarsenOne(top, ord, m, restrict)
		if err != nil {
			return err
		}
		*stack = append(*stack, next)
		return nil
	})
}

// ProlongStep pops the coarsest level and projects its partition onto the
// finer one.
func ProlongStep() Algo {
	return AlgoFunc(func(stack *core.Stack, _ *Records) error {
		return multilevel.ProlongOne(stack)
	})
}
