package fmgain

import "github.com/katalvlaran/partkit/core"

// KwayTable is the FM gain table for nbr_p > 2. It holds gains[i][p], the
// gain of moving vertex i to part p (undefined, never read, for
// p == parts[i]), and the same ordered bucket map as BipartTable, now keyed
// by (vertex, target-part) pairs.
//
// For vertex i and target p != parts[i], gain is the sum over incident
// (j,e) of w_e*([parts[j]==p] - [parts[j]==parts[i]]): the natural
// generalization of bipart's "edge becomes internal / external" accounting
// to more than two parts.
type KwayTable struct {
	topo *core.Topology
	ew   *core.Weights
	part *core.Partition
	nbrP int

	gains   [][]int64
	buckets map[int64][]Move
}

type kwaySnapshot struct {
	gains   [][]int64
	buckets map[int64][]Move
}

// NewKwayTable initializes gains[i][p] for every vertex and every target
// part once from the current partition.
func NewKwayTable(topo *core.Topology, ew *core.Weights, part *core.Partition, nbrP int) *KwayTable {
	t := &KwayTable{
		topo:    topo,
		ew:      ew,
		part:    part,
		nbrP:    nbrP,
		gains:   make([][]int64, topo.NbrN),
		buckets: make(map[int64][]Move),
	}
	for i := 0; i < topo.NbrN; i++ {
		t.gains[i] = make([]int64, nbrP)
		for p := 0; p < nbrP; p++ {
			if p == part.Parts[i] {
				continue
			}
			g := t.gainFormula(i, p)
			t.gains[i][p] = g
			bucketInsert(t.buckets, g, Move{Vertex: i, Target: p})
		}
	}
	return t
}

func (t *KwayTable) gainFormula(i, p int) int64 {
	pi := t.part.Parts[i]
	var sum int64
	for _, inc := range t.topo.Adjacency[i] {
		w := int64(t.ew.Matrix[inc.Edge][0])
		pj := t.part.Parts[inc.Neighbor]
		if pj == pi {
			sum -= w
		}
		if pj == p {
			sum += w
		}
	}
	return sum
}

// GainAt returns the gain of moving vertex i to part p, or false if p is
// i's current part (no such entry is maintained).
func (t *KwayTable) GainAt(i, p int) (int64, bool) {
	if p == t.part.Parts[i] {
		return 0, false
	}
	return t.gains[i][p], true
}

// BestCandidates implements Table.BestCandidates.
func (t *KwayTable) BestCandidates(locked []bool, canMove func(i, pTgt int) bool) (int64, []Move, bool) {
	return scanBuckets(t.buckets, locked, canMove)
}

// Move relocates vertex i to pTgt, recomputes i's whole row (its valid
// target set changes since its own part changed), and recomputes every
// distinct neighbor's row. Only the moved vertex and its adjacency are
// touched; k-way trades bipart's O(1) +/-2w shortcut for a full per-row
// recomputation.
func (t *KwayTable) Move(i, pTgt int) int64 {
	pSrc := t.part.Parts[i]
	applied := t.gains[i][pTgt]

	for p := 0; p < t.nbrP; p++ {
		if p == pSrc {
			continue
		}
		bucketRemove(t.buckets, t.gains[i][p], Move{Vertex: i, Target: p})
	}
	t.part.Parts[i] = pTgt
	for p := 0; p < t.nbrP; p++ {
		if p == pTgt {
			continue
		}
		g := t.gainFormula(i, p)
		t.gains[i][p] = g
		bucketInsert(t.buckets, g, Move{Vertex: i, Target: p})
	}

	seen := make(map[int]bool, len(t.topo.Adjacency[i]))
	for _, inc := range t.topo.Adjacency[i] {
		j := inc.Neighbor
		if j == i || seen[j] {
			continue
		}
		seen[j] = true
		pj := t.part.Parts[j]
		for p := 0; p < t.nbrP; p++ {
			if p == pj {
				continue
			}
			bucketRemove(t.buckets, t.gains[j][p], Move{Vertex: j, Target: p})
			g := t.gainFormula(j, p)
			t.gains[j][p] = g
			bucketInsert(t.buckets, g, Move{Vertex: j, Target: p})
		}
	}
	return applied
}

// TakeSnapshot deep-copies gains and the bucket map.
func (t *KwayTable) TakeSnapshot() any {
	gains := make([][]int64, len(t.gains))
	for i, row := range t.gains {
		cp := make([]int64, len(row))
		copy(cp, row)
		gains[i] = cp
	}
	return kwaySnapshot{gains: gains, buckets: cloneBuckets(t.buckets)}
}

// Restore replaces gains and the bucket map with a prior snapshot.
func (t *KwayTable) Restore(snap any) {
	s := snap.(kwaySnapshot)
	t.gains = s.gains
	t.buckets = s.buckets
}
