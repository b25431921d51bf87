package multilevel

import (
	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/core"
)

// CoarsenOne matches level's topology and coarsens it, recording the
// aggregation on level and returning the new (coarser) level.
func CoarsenOne(level *core.Level, order Order, matcher Matcher, restrict Restriction) (*core.Level, error) {
	ms := level.Models
	seq := order.Sequence(ms.Topology.NbrN)
	agg := matcher.Match(ms.Topology, ms.EntityWeights(), seq, restrict)

	coarseMS, err := core.Coarsen(ms, agg)
	if err != nil {
		return nil, err
	}
	level.Aggregation = agg
	return &core.Level{Models: coarseMS}, nil
}

// StopCoarsen decides whether Recurse should stop after reaching a level
// with the given vertex counts: current (the just-produced level), finer
// (the level it was coarsened from), and original (the stack's finest
// level).
type StopCoarsen func(current, original, finer int) bool

// Recurse repeatedly coarsens the top of stack, appending each new level,
// until stop reports true or a coarsening step fails to shrink the vertex
// count (no further matches found).
func Recurse(stack *core.Stack, stop StopCoarsen, order Order, matcher Matcher, restrict Restriction) error {
	s := *stack
	if len(s) == 0 {
		return wrapErr(partkit.KindInvalidInput, ErrEmptyStack)
	}
	original := s[0].Models.Topology.NbrN

	for {
		top := s[len(s)-1]
		finer := top.Models.Topology.NbrN
		next, err := CoarsenOne(top, order, matcher, restrict)
		if err != nil {
			return err
		}
		s = append(s, next)
		current := next.Models.Topology.NbrN
		if current == finer || stop(current, original, finer) {
			break
		}
	}
	*stack = s
	return nil
}

// ProlongOne pops the coarsest level off stack and projects its partition
// onto the next-finer level via the aggregation recorded when that level
// was coarsened.
func ProlongOne(stack *core.Stack) error {
	s := *stack
	n := len(s)
	if n < 2 {
		return wrapErr(partkit.KindInvariantViolation, ErrEmptyStack)
	}
	coarse := s[n-1]
	finer := s[n-2]
	if finer.Aggregation == nil {
		return wrapErr(partkit.KindInvariantViolation, ErrNoAggregation)
	}

	finerParts := make([]int, len(finer.Aggregation))
	for i, c := range finer.Aggregation {
		finerParts[i] = coarse.Models.Partition.Parts[c]
	}
	newPart, err := core.NewPartition(finerParts, len(finerParts), coarse.Models.Partition.NbrP)
	if err != nil {
		return err
	}
	finer.Models.Partition = newPart

	*stack = s[:n-1]
	return nil
}
