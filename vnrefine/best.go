package vnrefine

import (
	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/objective"
	"github.com/katalvlaran/partkit/vngain"
)

// Best runs the best-gain VN balance refiner: repeatedly selects the most
// overloaded (criterion, part) pair, probes vngain.Table for the move
// minimizing the resulting aggregate imbalance, and applies it, stopping
// as soon as no candidate move strictly decreases the aggregate.
func Best(ms *core.ModelSet, targets *core.Targets) Stats {
	table := vngain.NewTable(ms, targets)
	var stats Stats
	cur := objective.MaxImbalance(table.Imb())
	stats.MaxImbalanceStart = cur

	for {
		i, pSrc, pTgt, newUMax, ok := table.BestMove()
		if !ok || !(newUMax < cur) {
			break
		}
		table.Apply(i, pSrc, pTgt)
		cur = newUMax
		stats.MovesDone++
	}

	stats.MaxImbalanceEnd = cur
	return stats
}
