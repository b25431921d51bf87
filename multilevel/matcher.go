package multilevel

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/partkit/core"
)

// Matcher produces an aggregation vector (fine vertex -> coarse vertex id)
// by pairing up unmatched vertices; every fiber has size at most two.
type Matcher interface {
	Match(topo *core.Topology, ew *core.Weights, order []int, allowed Restriction) []int
}

type matcherFunc struct {
	pick func(topo *core.Topology, ew *core.Weights, i int, candidates []int) int
}

func (m matcherFunc) Match(topo *core.Topology, ew *core.Weights, order []int, allowed Restriction) []int {
	nbrN := topo.NbrN
	matched := make([]bool, nbrN)
	agg := make([]int, nbrN)
	next := 0
	for _, i := range order {
		if matched[i] {
			continue
		}
		var feasible []int
		for _, inc := range topo.Adjacency[i] {
			if inc.Neighbor == i || matched[inc.Neighbor] {
				continue
			}
			if allowed == nil || allowed([]int{i, inc.Neighbor}) {
				feasible = append(feasible, inc.Neighbor)
			}
		}
		if len(feasible) == 0 {
			matched[i] = true
			agg[i] = next
			next++
			continue
		}
		j := m.pick(topo, ew, i, feasible)
		matched[i] = true
		matched[j] = true
		agg[i] = next
		agg[j] = next
		next++
	}
	return agg
}

// MatchFirst pairs each unmatched vertex with the first unmatched,
// allowed neighbor encountered in adjacency order.
func MatchFirst() Matcher {
	return matcherFunc{pick: func(_ *core.Topology, _ *core.Weights, _ int, candidates []int) int {
		return candidates[0]
	}}
}

// MatchRandom pairs each unmatched vertex with a uniformly random
// unmatched, allowed neighbor.
func MatchRandom(rng *rand.Rand) Matcher {
	return matcherFunc{pick: func(_ *core.Topology, _ *core.Weights, _ int, candidates []int) int {
		return candidates[rng.Intn(len(candidates))]
	}}
}

// MatchHEM (heavy-edge matching) pairs each unmatched vertex with the
// unmatched, allowed neighbor reached via the heaviest incident edge.
func MatchHEM() Matcher {
	return matcherFunc{pick: func(topo *core.Topology, ew *core.Weights, i int, candidates []int) int {
		sort.Slice(candidates, func(a, b int) bool {
			return edgeWeightBetween(topo, ew, i, candidates[a]) > edgeWeightBetween(topo, ew, i, candidates[b])
		})
		return candidates[0]
	}}
}

func edgeWeightBetween(topo *core.Topology, ew *core.Weights, i, j int) float64 {
	var total float64
	for _, inc := range topo.Adjacency[i] {
		if inc.Neighbor == j {
			for _, w := range ew.Matrix[inc.Edge] {
				total += w
			}
		}
	}
	return total
}
