package orchestrate

import (
	"fmt"

	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/objective"
)

// Repeat runs Body NbrTests times, each trial on a private copy of the
// stack, and installs the winning trial's partitions back into the live
// stack. Stop, when non-nil, ends a trial early between phases. Best picks
// the winning trial index; it defaults to SelectMinCut.
type Repeat struct {
	NbrTests int
	Stop     Cond
	Body     []Phase
	Best     func(trials []*core.Stack) int
}

// Run implements Algo.
func (r Repeat) Run(stack *core.Stack, rec *Records) error {
	if r.NbrTests < 1 {
		return wrapErr(partkit.KindMissingArgument,
			fmt.Errorf("%w: nbr_tests = %d", ErrNoTrials, r.NbrTests))
	}
	best := r.Best
	if best == nil {
		best = SelectMinCut
	}

	trials := make([]*core.Stack, r.NbrTests)
	for t := 0; t < r.NbrTests; t++ {
		trial := cloneStack(*stack)
		if err := run(&trial, r.Body, rec, r.Stop, nil); err != nil {
			return err
		}
		trials[t] = &trial
	}

	winner := best(trials)
	if winner < 0 || winner >= len(trials) {
		return wrapErr(partkit.KindUnsupportedOption,
			fmt.Errorf("%w: select returned %d of %d trials", ErrPhaseOutOfRange, winner, len(trials)))
	}
	*stack = *trials[winner]
	return nil
}

// cloneStack copies the stack for one trial: topology, weights and targets
// are shared (immutable after construction), partitions and aggregations
// are deep-copied since the trial's phases mutate them in place.
func cloneStack(s core.Stack) core.Stack {
	out := make(core.Stack, len(s))
	for i, lvl := range s {
		ms := *lvl.Models
		ms.Partition = lvl.Models.Partition.Clone()
		var agg []int
		if lvl.Aggregation != nil {
			agg = append([]int(nil), lvl.Aggregation...)
		}
		out[i] = &core.Level{Models: &ms, Aggregation: agg}
	}
	return out
}

// SelectMinCut picks the trial whose coarsest level has the smallest λ−1
// cut, the default "select" of a repeat phase.
func SelectMinCut(trials []*core.Stack) int {
	winner := 0
	var bestCut int64
	for t, trial := range trials {
		ms := (*trial)[len(*trial)-1].Models
		cut := objective.CutLambdaMinusOne(ms.Topology, ms.EntityWeights(), ms.Partition)
		if t == 0 || cut < bestCut {
			winner, bestCut = t, cut
		}
	}
	return winner
}

// SelectMinImbalance picks the trial whose coarsest level has the smallest
// aggregate imbalance.
func SelectMinImbalance(trials []*core.Stack) int {
	winner := 0
	var bestImb float64
	for t, trial := range trials {
		ms := (*trial)[len(*trial)-1].Models
		imb := objective.MaxImbalance(core.Imbalance(ms, ms.Targets))
		if t == 0 || imb < bestImb {
			winner, bestImb = t, imb
		}
	}
	return winner
}
