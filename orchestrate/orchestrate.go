// Package orchestrate sequences partitioning phases: initial partitioners,
// refiners, coarsen/prolong steps, random-seed phases, repeat blocks and
// conditional forks. Phases are Go values, not parsed task descriptions:
// any textual front-end that builds a task list lives outside this module.
package orchestrate

import (
	"math/rand"

	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/core"
)

// Records carries the cross-phase state the orchestrator owns: the single
// process-wide pseudo-random stream every stochastic operator draws from,
// and the counter behind the "increasing" seed phase.
type Records struct {
	rng      *rand.Rand
	nextSeed int64
}

// Rand returns the process-wide random stream, lazily seeding it with 1
// when no seed phase has run yet.
func (r *Records) Rand() *rand.Rand {
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(1))
	}
	return r.rng
}

func (r *Records) reseed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

func (r *Records) takeNextSeed() int64 {
	if r.nextSeed == 0 {
		r.nextSeed = 1
	}
	v := r.nextSeed
	r.nextSeed++
	return v
}

// Event reports one executed phase to the caller-supplied observer. Err is
// nil on success; a non-nil Err is also returned from Run (all errors are
// fatal to the run).
type Event struct {
	Index int
	Phase string
	Err   error
}

// End is the next-phase index that terminates a run.
const End = -1

// Run executes phases starting at index 0, following each phase's NextSpec
// (or falling through to the next index) until the index leaves the phase
// list or a phase fails. onEvent, when non-nil, observes every executed
// phase, so callers can report progress without this library owning an
// output sink.
func Run(stack *core.Stack, phases []Phase, onEvent func(Event)) error {
	rec := &Records{}
	return run(stack, phases, rec, nil, onEvent)
}

func run(stack *core.Stack, phases []Phase, rec *Records, stop Cond, onEvent func(Event)) error {
	i := 0
	for i >= 0 && i < len(phases) {
		if stop != nil && stop(stack, rec) {
			return nil
		}
		ph := phases[i]
		if ph.Algo == nil {
			return wrapErr(partkit.KindUnsupportedOption, ErrNilAlgo)
		}
		err := ph.Algo.Run(stack, rec)
		if onEvent != nil {
			onEvent(Event{Index: i, Phase: ph.Name, Err: err})
		}
		if err != nil {
			return err
		}
		next, err := ph.nextIndex(stack, rec, i, len(phases))
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}
