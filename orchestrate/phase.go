package orchestrate

import (
	"fmt"

	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/core"
)

// Algo is one executable phase body: an initial partitioner, a refiner, a
// coarsen or prolong step, a seed phase, a repeat block, or a pass.
type Algo interface {
	Run(stack *core.Stack, rec *Records) error
}

// AlgoFunc adapts a plain function to Algo, the way callers wrap refiners
// and partitioners into a task list.
type AlgoFunc func(stack *core.Stack, rec *Records) error

// Run implements Algo.
func (f AlgoFunc) Run(stack *core.Stack, rec *Records) error { return f(stack, rec) }

// Pass is the no-op phase body, useful as a pure fork point.
func Pass() Algo {
	return AlgoFunc(func(*core.Stack, *Records) error { return nil })
}

// Phase names one step of a task list. A nil Next falls through to the
// following index.
type Phase struct {
	Name string
	Algo Algo
	Next *NextSpec
}

// NextSpec decides the index of the next phase: the first Alt whose
// conditions hold wins, otherwise Next is used. Next == End stops the run.
type NextSpec struct {
	Alternatives []Alt
	Next         int
}

// Alt pairs a condition list with the phase index to jump to when it
// holds. A single condition stands on its own; multiple conditions require
// Combine to fold their results.
type Alt struct {
	Conds   []Cond
	Combine func(results []bool) bool
	Phase   int
}

func (p Phase) nextIndex(stack *core.Stack, rec *Records, cur, nbrPhases int) (int, error) {
	if p.Next == nil {
		return cur + 1, nil
	}
	for _, alt := range p.Next.Alternatives {
		taken, err := alt.evaluate(stack, rec, p.Name)
		if err != nil {
			return 0, err
		}
		if taken {
			return checkIndex(alt.Phase, nbrPhases, p.Name)
		}
	}
	return checkIndex(p.Next.Next, nbrPhases, p.Name)
}

func (a Alt) evaluate(stack *core.Stack, rec *Records, phase string) (bool, error) {
	if len(a.Conds) == 0 {
		return false, nil
	}
	if len(a.Conds) == 1 {
		return a.Conds[0](stack, rec), nil
	}
	if a.Combine == nil {
		return false, wrapErr(partkit.KindMissingArgument,
			fmt.Errorf("%w: phase %q has %d conditions", ErrMissingCombine, phase, len(a.Conds)))
	}
	results := make([]bool, len(a.Conds))
	for j, c := range a.Conds {
		results[j] = c(stack, rec)
	}
	return a.Combine(results), nil
}

func checkIndex(next, nbrPhases int, phase string) (int, error) {
	if next == End {
		return End, nil
	}
	if next < 0 || next >= nbrPhases {
		return 0, wrapErr(partkit.KindUnsupportedOption,
			fmt.Errorf("%w: phase %q jumps to %d of %d", ErrPhaseOutOfRange, phase, next, nbrPhases))
	}
	return next, nil
}
