package orchestrate

import "github.com/katalvlaran/partkit/core"

// SeedKind selects how a RandomSeed phase derives the new seed.
type SeedKind int

const (
	// SeedFixed reseeds with the given value.
	SeedFixed SeedKind = iota
	// SeedFresh reseeds with a value drawn from the current stream, so the
	// new seed is itself reproducible from the previous one.
	SeedFresh
	// SeedIncreasing reseeds with a counter starting at 1 and incremented
	// on every SeedIncreasing phase of the run.
	SeedIncreasing
)

// RandomSeed builds the seed phase that resets the orchestrator's
// process-wide random stream: every stochastic operator in the run draws
// from the stream it installs.
func RandomSeed(kind SeedKind, value int64) Algo {
	return AlgoFunc(func(_ *core.Stack, rec *Records) error {
		switch kind {
		case SeedFresh:
			rec.reseed(rec.Rand().Int63n(1000001))
		case SeedIncreasing:
			rec.reseed(rec.takeNextSeed())
		default:
			rec.reseed(value)
		}
		return nil
	})
}
