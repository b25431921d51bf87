package fm

import (
	"context"

	"github.com/katalvlaran/partkit"
	"github.com/katalvlaran/partkit/constraint"
	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/fmgain"
	"github.com/katalvlaran/partkit/objective"
)

// Stats reports the outcome of a Run: move counters and the objective
// value. ObjValue and BestObjValue both hold the objective after the last
// pass's recovery.
type Stats struct {
	MovesDone    int64
	MovesNeg     int64
	MovesNegRow  int64
	ObjValue     int64
	BestObjValue int64
	OuterPasses  int
}

// Refiner runs FM cut refinement over one model set's partition. The
// bipart/k-way dispatch is made once, at construction.
type Refiner struct {
	ms         *core.ModelSet
	ew         *core.Weights
	constraint *constraint.Imbalance
	table      fmgain.Table
	cfg        *config
}

// New constructs a Refiner. ew is the graph's edge weights (distinct from
// ms.VertexWeights, which c was built from); c is the caller-constructed
// imbalance constraint that gates every candidate move.
func New(ms *core.ModelSet, ew *core.Weights, c *constraint.Imbalance, opts ...Option) (*Refiner, error) {
	if ms.Topology.Kind != core.KindGraph {
		return nil, wrapErr(partkit.KindUnsupportedOption, ErrHypergraphUnsupported)
	}
	if !ew.IsInteger() {
		return nil, wrapErr(partkit.KindInvariantViolation, ErrNonIntegerEdgeWeight)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	var table fmgain.Table
	if ms.Partition.NbrP == 2 {
		table = fmgain.NewBipartTable(ms.Topology, ew, ms.Partition)
	} else {
		table = fmgain.NewKwayTable(ms.Topology, ew, ms.Partition, ms.Partition.NbrP)
	}
	return &Refiner{ms: ms, ew: ew, constraint: c, table: table, cfg: cfg}, nil
}

// Run executes the outer/inner refinement loop until the outer stop
// predicate fires, or ctx is cancelled. Cancellation is checked
// cooperatively between outer passes only; within a pass the loop budgets
// are the sole bound.
func (r *Refiner) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	part := r.ms.Partition
	prevObj := objective.CutLambdaMinusOne(r.ms.Topology, r.ew, part)

	for {
		if err := ctx.Err(); err != nil {
			stats.ObjValue = prevObj
			stats.BestObjValue = prevObj
			return stats, err
		}

		obj := r.runInnerPass(part, prevObj, &stats)
		stats.OuterPasses++
		if r.cfg.stopOuter(prevObj, obj) {
			stats.ObjValue = obj
			stats.BestObjValue = obj
			return stats, nil
		}
		prevObj = obj
	}
}

// runInnerPass runs one inner pass and returns the objective value after
// end-of-pass recovery.
func (r *Refiner) runInnerPass(part *core.Partition, startObj int64, stats *Stats) int64 {
	nbrN := len(part.Parts)
	locked := make([]bool, nbrN)
	obj := startObj
	best := startObj

	var snapshotTaken bool
	var snapParts []int
	var snapConstraint *constraint.Imbalance
	var snapTable any

	canMove := func(i, pTgt int) bool {
		return r.constraint.CanMove(i, part.Parts[i], pTgt)
	}

	var negCum, negRow int64
	for {
		if r.cfg.stopInner.shouldStop(negCum, negRow) {
			break
		}
		gain, moves, ok := r.cfg.selector(r.table, locked, canMove)
		if !ok {
			break
		}
		mv := r.cfg.tieBreak.pick(moves, r.cfg.rng)

		// Until the first non-improving move, obj tracks best exactly; the
		// first accepted gain <= 0 is about to leave the best state seen
		// this pass, so keep a recovery copy of everything the move mutates.
		if !snapshotTaken && gain <= 0 {
			snapParts = append([]int(nil), part.Parts...)
			snapConstraint = r.constraint.Snapshot()
			snapTable = r.table.TakeSnapshot()
			snapshotTaken = true
		}

		pSrc := part.Parts[mv.Vertex]
		applied := r.table.Move(mv.Vertex, mv.Target)
		r.constraint.Moved(mv.Vertex, pSrc, mv.Target)
		locked[mv.Vertex] = true

		obj -= applied
		if !snapshotTaken && obj < best {
			best = obj
		}
		stats.MovesDone++
		if applied <= 0 {
			stats.MovesNeg++
			negCum++
			negRow++
			stats.MovesNegRow = negRow
		} else {
			negRow = 0
			stats.MovesNegRow = 0
		}
	}

	if obj < best {
		// the pass improved past the snapshot point; the live state wins.
		return obj
	}
	if snapshotTaken {
		copy(part.Parts, snapParts)
		r.constraint.Restore(snapConstraint)
		r.table.Restore(snapTable)
	}
	return best
}
