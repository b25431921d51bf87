package fm

import (
	"math/rand"

	"github.com/katalvlaran/partkit/fmgain"
)

// TieBreak selects among candidate moves tied at the best admissible gain.
type TieBreak int

const (
	// TieFirst picks the first tied candidate in scan order (default).
	TieFirst TieBreak = iota
	// TieLast picks the last tied candidate in scan order.
	TieLast
	// TieRandom picks uniformly among tied candidates, drawing from the
	// refiner's *rand.Rand.
	TieRandom
)

func (tb TieBreak) pick(moves []fmgain.Move, rng *rand.Rand) fmgain.Move {
	switch tb {
	case TieLast:
		return moves[len(moves)-1]
	case TieRandom:
		if rng == nil {
			return moves[0]
		}
		return moves[rng.Intn(len(moves))]
	default:
		return moves[0]
	}
}

// StopInner bounds a single inner pass: MaxNegCum caps the cumulative
// number of non-positive-gain (gain <= 0) moves accepted in the pass,
// MaxNegRow caps consecutive ones (reset by any positive-gain move). 0
// means "no cap" for either field. The pass always also stops when no
// admissible vertex remains.
type StopInner struct {
	MaxNegCum int64
	MaxNegRow int64
}

func (s StopInner) shouldStop(negCum, negRow int64) bool {
	if s.MaxNegCum > 0 && negCum >= s.MaxNegCum {
		return true
	}
	if s.MaxNegRow > 0 && negRow >= s.MaxNegRow {
		return true
	}
	return false
}

// Selector is the pluggable move-selection policy; the default wraps
// fmgain.Table.BestCandidates directly (best admissible gain wins).
type Selector func(t fmgain.Table, locked []bool, canMove func(i, pTgt int) bool) (gain int64, moves []fmgain.Move, ok bool)

func defaultSelector(t fmgain.Table, locked []bool, canMove func(i, pTgt int) bool) (int64, []fmgain.Move, bool) {
	return t.BestCandidates(locked, canMove)
}

// Option configures a Refiner at construction time.
type Option func(*config)

type config struct {
	tieBreak  TieBreak
	stopInner StopInner
	stopOuter func(prevObj, obj int64) bool
	selector  Selector
	rng       *rand.Rand
}

func defaultConfig() *config {
	return &config{
		tieBreak:  TieFirst,
		stopInner: StopInner{},
		stopOuter: func(prevObj, obj int64) bool { return !(obj < prevObj) },
		selector:  defaultSelector,
	}
}

// WithTieBreak overrides the default "first" tie-break.
func WithTieBreak(tb TieBreak) Option {
	return func(c *config) { c.tieBreak = tb }
}

// WithStopInner overrides the default (uncapped, stop-on-no-candidate)
// inner-pass budget.
func WithStopInner(s StopInner) Option {
	return func(c *config) { c.stopInner = s }
}

// WithStopOuter overrides the default outer-pass stop predicate
// ("current objective not strictly better than the previous pass's").
func WithStopOuter(stop func(prevObj, obj int64) bool) Option {
	return func(c *config) { c.stopOuter = stop }
}

// WithSelector overrides the default best_valid move-selection policy.
func WithSelector(sel Selector) Option {
	return func(c *config) { c.selector = sel }
}

// WithRand supplies the *rand.Rand used by TieRandom.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithSeed is WithRand with a freshly seeded *rand.Rand.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
