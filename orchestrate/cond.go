package orchestrate

import "github.com/katalvlaran/partkit/core"

// Cond is a fork sub-condition evaluated against the current stack.
type Cond func(stack *core.Stack, rec *Records) bool

// All folds conditions conjunctively.
func All(cs ...Cond) Cond {
	return func(stack *core.Stack, rec *Records) bool {
		for _, c := range cs {
			if !c(stack, rec) {
				return false
			}
		}
		return true
	}
}

// Any folds conditions disjunctively.
func Any(cs ...Cond) Cond {
	return func(stack *core.Stack, rec *Records) bool {
		for _, c := range cs {
			if c(stack, rec) {
				return true
			}
		}
		return false
	}
}

// Not negates a condition.
func Not(c Cond) Cond {
	return func(stack *core.Stack, rec *Records) bool { return !c(stack, rec) }
}

// NumberOfNodes builds a condition over the stack's vertex counts:
// current is the coarsest level's count, original the finest's, finer the
// level above the coarsest (equal to current while the stack has a single
// level).
func NumberOfNodes(cmp func(current, original, finer int) bool) Cond {
	return func(stack *core.Stack, _ *Records) bool {
		s := *stack
		if len(s) == 0 {
			return false
		}
		current := s[len(s)-1].Models.Topology.NbrN
		original := s[0].Models.Topology.NbrN
		finer := current
		if len(s) > 1 {
			finer = s[len(s)-2].Models.Topology.NbrN
		}
		return cmp(current, original, finer)
	}
}

// ValidPartition reports whether the coarsest level's partition satisfies
// every per-criterion tolerance: imb[c][p] <= tol[c] for all c, p.
// Retry-until-valid flows compose this with a Repeat phase.
func ValidPartition(tol []float64) Cond {
	return func(stack *core.Stack, _ *Records) bool {
		s := *stack
		if len(s) == 0 {
			return false
		}
		ms := s[len(s)-1].Models
		imbs := core.Imbalance(ms, ms.Targets)
		for c, row := range imbs {
			for _, v := range row {
				if v > tol[c] {
					return false
				}
			}
		}
		return true
	}
}
