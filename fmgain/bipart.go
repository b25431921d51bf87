package fmgain

import "github.com/katalvlaran/partkit/core"

// BipartTable is the FM gain table specialized for nbr_p == 2. It holds,
// per vertex, the gain of moving that vertex to the other part, and an
// ordered bucket map from gain to vertex.
type BipartTable struct {
	topo *core.Topology
	ew   *core.Weights
	part *core.Partition

	gainOf  []int64
	buckets map[int64][]Move
}

type bipartSnapshot struct {
	gainOf  []int64
	buckets map[int64][]Move
}

// NewBipartTable initializes every vertex's gain once from the current
// partition.
func NewBipartTable(topo *core.Topology, ew *core.Weights, part *core.Partition) *BipartTable {
	t := &BipartTable{
		topo:    topo,
		ew:      ew,
		part:    part,
		gainOf:  make([]int64, topo.NbrN),
		buckets: make(map[int64][]Move),
	}
	for i := 0; i < topo.NbrN; i++ {
		g := t.cutGain(i, other(part.Parts[i]))
		t.gainOf[i] = g
		bucketInsert(t.buckets, g, Move{Vertex: i, Target: other(part.Parts[i])})
	}
	return t
}

func other(p int) int {
	if p == 0 {
		return 1
	}
	return 0
}

func (t *BipartTable) cutGain(i, pTgt int) int64 {
	pSrc := t.part.Parts[i]
	var oldCost, newCost int64
	for _, inc := range t.topo.Adjacency[i] {
		w := int64(t.ew.Matrix[inc.Edge][0])
		pj := t.part.Parts[inc.Neighbor]
		if pj != pSrc {
			oldCost += w
		}
		if pj != pTgt {
			newCost += w
		}
	}
	return oldCost - newCost
}

// Gain returns vertex i's current gain of moving to the other part.
func (t *BipartTable) Gain(i int) int64 { return t.gainOf[i] }

// BestCandidates implements Table.BestCandidates by scanning bucket keys
// from largest to smallest.
func (t *BipartTable) BestCandidates(locked []bool, canMove func(i, pTgt int) bool) (int64, []Move, bool) {
	return scanBuckets(t.buckets, locked, canMove)
}

// Move relocates vertex i to pTgt (the only other part in a bipartition),
// applying the classic bipart incremental update: the moved vertex's gain
// negates, and each neighbor j's gain changes by +/-2*w_e depending on
// whether j (before the move) already sat in pTgt.
func (t *BipartTable) Move(i, pTgt int) int64 {
	applied := t.gainOf[i]
	pSrc := t.part.Parts[i]

	bucketRemove(t.buckets, t.gainOf[i], Move{Vertex: i, Target: pTgt})
	t.part.Parts[i] = pTgt
	t.gainOf[i] = -applied
	bucketInsert(t.buckets, t.gainOf[i], Move{Vertex: i, Target: pSrc})

	for _, inc := range t.topo.Adjacency[i] {
		j := inc.Neighbor
		if j == i {
			continue
		}
		w := int64(t.ew.Matrix[inc.Edge][0])
		jTgt := other(t.part.Parts[j])
		old := t.gainOf[j]
		bucketRemove(t.buckets, old, Move{Vertex: j, Target: jTgt})
		if t.part.Parts[j] == pTgt {
			t.gainOf[j] -= 2 * w
		} else {
			t.gainOf[j] += 2 * w
		}
		bucketInsert(t.buckets, t.gainOf[j], Move{Vertex: j, Target: jTgt})
	}
	return applied
}

// TakeSnapshot deep-copies gainOf and the bucket map.
func (t *BipartTable) TakeSnapshot() any {
	gainOf := make([]int64, len(t.gainOf))
	copy(gainOf, t.gainOf)
	return bipartSnapshot{gainOf: gainOf, buckets: cloneBuckets(t.buckets)}
}

// Restore replaces gainOf and the bucket map with a prior snapshot.
func (t *BipartTable) Restore(snap any) {
	s := snap.(bipartSnapshot)
	t.gainOf = s.gainOf
	t.buckets = s.buckets
}

// scanBuckets is the shared bucket-scan used by both table variants: it
// walks keys from the maximum gain downward and returns the first bucket
// (after admissibility filtering) along with every tied candidate in it.
func scanBuckets(buckets map[int64][]Move, locked []bool, canMove func(i, pTgt int) bool) (int64, []Move, bool) {
	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sortDesc(keys)
	for _, g := range keys {
		var final []Move
		for _, mv := range buckets[g] {
			if locked[mv.Vertex] {
				continue
			}
			if canMove(mv.Vertex, mv.Target) {
				final = append(final, mv)
			}
		}
		if len(final) > 0 {
			return g, final, true
		}
	}
	return 0, nil, false
}

func sortDesc(keys []int64) {
	for i := 1; i < len(keys); i++ {
		k := keys[i]
		j := i - 1
		for j >= 0 && keys[j] < k {
			keys[j+1] = keys[j]
			j--
		}
		keys[j+1] = k
	}
}
