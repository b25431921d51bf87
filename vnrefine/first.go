package vnrefine

import (
	"math/rand"

	"github.com/katalvlaran/partkit/core"
	"github.com/katalvlaran/partkit/objective"
)

// Stats reports a refiner's move count and the aggregate imbalance before
// and after the run, shared between First and Best.
type Stats struct {
	MovesDone         int64
	MaxImbalanceStart float64
	MaxImbalanceEnd   float64
}

// FirstOption configures First at call time.
type FirstOption func(*firstConfig)

type firstConfig struct {
	maxSinceImprovement int
	rng                 *rand.Rand
}

// WithMaxSinceImprovement overrides the default stop budget (NbrN moves
// tried without a strict improvement).
func WithMaxSinceImprovement(n int) FirstOption {
	return func(c *firstConfig) { c.maxSinceImprovement = n }
}

// WithRand randomizes First's starting vertex and per-vertex target-part
// order, drawing from r.
func WithRand(r *rand.Rand) FirstOption {
	return func(c *firstConfig) { c.rng = r }
}

// WithSeed is WithRand with a freshly seeded *rand.Rand.
func WithSeed(seed int64) FirstOption {
	return func(c *firstConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// First runs the first-improvement VN balance refiner: it scans vertices
// cyclically, tries every other part for each, and accepts the first move
// that strictly reduces the aggregate imbalance, restarting the scan at
// the moved vertex. It stops once MaxSinceImprovement moves have been
// tried in a row without any accepted move.
func First(ms *core.ModelSet, targets *core.Targets, opts ...FirstOption) (Stats, error) {
	cfg := &firstConfig{maxSinceImprovement: ms.Topology.NbrN}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxSinceImprovement <= 0 {
		cfg.maxSinceImprovement = ms.Topology.NbrN
	}

	nbrN := ms.Topology.NbrN
	nbrP := ms.Partition.NbrP
	nbrC := ms.NbrC()
	normW := make([][]float64, nbrN)
	for i := 0; i < nbrN; i++ {
		row := make([]float64, nbrC)
		for c := 0; c < nbrC; c++ {
			row[c] = ms.NormWeight(i, c)
		}
		normW[i] = row
	}

	start := 0
	if cfg.rng != nil && nbrN > 0 {
		start = cfg.rng.Intn(nbrN)
	}

	imbs := core.Imbalance(ms, targets)
	var stats Stats
	stats.MaxImbalanceStart = objective.MaxImbalance(imbs)

	if nbrN == 0 {
		stats.MaxImbalanceEnd = stats.MaxImbalanceStart
		return stats, nil
	}

	nodeIt := NewNodeIterator(nbrN, start)
	triesSinceImprovement := 0

	for triesSinceImprovement < cfg.maxSinceImprovement {
		v, ok := nodeIt.Next()
		if !ok {
			nodeIt.Restart(-1)
			v, ok = nodeIt.Next()
			if !ok {
				break
			}
		}
		triesSinceImprovement++

		pSrc := ms.Partition.Parts[v]
		partStart := 0
		if cfg.rng != nil {
			partStart = cfg.rng.Intn(nbrP)
		}
		partIt := NewPartIterator(nbrP, pSrc, partStart)
		curMax := objective.MaxImbalance(imbs)

		for {
			pTgt, ok := partIt.Next()
			if !ok {
				break
			}
			candidate := objective.ImbalancesAfterMove(normW[v], pSrc, pTgt, nbrP, imbs)
			if objective.MaxImbalance(candidate) < curMax {
				ms.Partition.Parts[v] = pTgt
				imbs = candidate
				stats.MovesDone++
				triesSinceImprovement = 0
				nodeIt.Restart(v)
				break
			}
		}
	}

	stats.MaxImbalanceEnd = objective.MaxImbalance(imbs)
	return stats, nil
}
