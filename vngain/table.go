// Package vngain implements the vector-of-numbers imbalance gain table used
// by the VN "best gain" refiner: a piecewise-linear, per-(part,criterion)
// gain formula over vertices sorted by normalized weight, with an
// inflection index marking the current maximum.
package vngain

import (
	"math"
	"sort"

	"github.com/katalvlaran/partkit/core"
)

// sentinelNeverMove marks a vertex whose normalized weight on some
// criterion exceeds the current aggregate imbalance: moving it can only
// overshoot, so it never helps.
var sentinelNeverMove = math.Inf(-1)

// Table holds, per (part, criterion): the vertex indices sorted by
// normalized weight ascending (shared across parts, since weight does not
// depend on part), the parallel gain array, and the inflection index --
// the position of the current maximal gain.
type Table struct {
	nbrP, nbrC int
	normW      [][]float64 // normW[i][c]

	sortedIdx [][]int // sortedIdx[c][pos] -> vertex id, ascending by normW[.][c]
	posOf     [][]int // posOf[c][i] -> pos in sortedIdx[c]

	gains      [][][]float64 // gains[p][c][pos]
	inflection [][]int       // inflection[p][c]

	imb       [][]float64 // imb[c][p], owned by this table
	uMaxGlobal float64

	part *core.Partition
}

// NewTable builds the gain table from a model set's current partition and
// targets.
func NewTable(ms *core.ModelSet, targets *core.Targets) *Table {
	nbrN := ms.Topology.NbrN
	nbrC := ms.NbrC()
	nbrP := ms.Partition.NbrP

	normW := make([][]float64, nbrN)
	for i := 0; i < nbrN; i++ {
		row := make([]float64, nbrC)
		for c := 0; c < nbrC; c++ {
			row[c] = ms.NormWeight(i, c)
		}
		normW[i] = row
	}

	t := &Table{
		nbrP: nbrP, nbrC: nbrC,
		normW: normW,
		part:  ms.Partition,
		imb:   core.Imbalance(ms, targets),
	}
	t.sortedIdx = make([][]int, nbrC)
	t.posOf = make([][]int, nbrC)
	for c := 0; c < nbrC; c++ {
		idx := make([]int, nbrN)
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return normW[idx[a]][c] < normW[idx[b]][c] })
		t.sortedIdx[c] = idx
		pos := make([]int, nbrN)
		for p, v := range idx {
			pos[v] = p
		}
		t.posOf[c] = pos
	}

	t.recomputeUMaxGlobal()
	t.gains = make([][][]float64, nbrP)
	t.inflection = make([][]int, nbrP)
	for p := 0; p < nbrP; p++ {
		t.gains[p] = make([][]float64, nbrC)
		t.inflection[p] = make([]int, nbrC)
		for c := 0; c < nbrC; c++ {
			t.recomputeColumn(p, c)
		}
	}
	return t
}

func (t *Table) maxNormWeight(i int) float64 {
	max := 0.0
	for _, w := range t.normW[i] {
		if w > max {
			max = w
		}
	}
	return max
}

func (t *Table) recomputeUMaxGlobal() {
	max := 0.0
	first := true
	for _, row := range t.imb {
		for _, v := range row {
			if first || v > max {
				max = v
				first = false
			}
		}
	}
	t.uMaxGlobal = max
}

// Gain returns the analytic gain of moving vertex i in or out of part p
// on criterion c, or the never-move sentinel when i is too heavy to help.
func (t *Table) Gain(i, p, c int) float64 {
	if t.maxNormWeight(i) > t.uMaxGlobal {
		return sentinelNeverMove
	}
	return t.gainAt(i, p, c)
}

func (t *Table) gainAt(i, p, c int) float64 {
	u := t.imb[c][p]
	w := t.normW[i][c]
	nbrP := float64(t.nbrP)
	if t.part.Parts[i] == p {
		switch {
		case u <= 0:
			return -nbrP * w
		case nbrP*w < u:
			return nbrP * w
		default:
			return 2*u - nbrP*w
		}
	}
	switch {
	case u >= 0:
		return -nbrP * w
	case nbrP*w < -u:
		return nbrP * w
	default:
		return -2*u - nbrP*w
	}
}

func (t *Table) recomputeColumn(p, c int) {
	idx := t.sortedIdx[c]
	col := make([]float64, len(idx))
	best := 0
	for pos, i := range idx {
		g := t.gainAt(i, p, c)
		if t.maxNormWeight(i) > t.uMaxGlobal {
			g = sentinelNeverMove
		}
		col[pos] = g
		if g > col[best] {
			best = pos
		}
	}
	t.gains[p][c] = col
	t.inflection[p][c] = best
}

// BestMove locates the most overloaded (criterion, part) pair and probes
// candidates to leave that part by walking outward from the inflection
// index: the gain is unimodal along the sorted-by-weight axis, so at each
// step the neighbor (inf-1 or sup+1) with the greater gain is tried next.
// Each candidate's post-move imbalance matrix is derived analytically (two
// entries per criterion); the candidate yielding the smallest aggregate
// wins. The walk short-circuits as soon as a candidate leaves the same
// pair overloaded: by unimodality no later candidate can do better. It
// also stops once both directions hit the never-move sentinel.
func (t *Table) BestMove() (i, pSrc, pTgt int, newUMax float64, ok bool) {
	cMax, pSrcFound, uMax := 0, 0, math.Inf(-1)
	for c, row := range t.imb {
		for p, v := range row {
			if v > uMax {
				uMax, cMax, pSrcFound = v, c, p
			}
		}
	}

	idx := t.sortedIdx[cMax]
	if len(idx) == 0 {
		return 0, 0, 0, uMax, false
	}
	col := t.gains[pSrcFound][cMax]
	start := t.inflection[pSrcFound][cMax]

	bestUMax := math.Inf(1)
	bestI, bestTgt := -1, -1

	consider := func(pos int) (stop bool) {
		v := idx[pos]
		if t.part.Parts[v] != pSrcFound {
			return false
		}
		for p := 0; p < t.nbrP; p++ {
			if p == pSrcFound {
				continue
			}
			candidate := simulateMove(t.imb, t.normW[v], pSrcFound, p, t.nbrP)
			cNew, pNew, u := argmaxOf(candidate)
			if u < bestUMax {
				bestUMax, bestI, bestTgt = u, v, p
			}
			if cNew == cMax && pNew == pSrcFound {
				stop = true
			}
		}
		return stop
	}

	stopped := consider(start)
	inf, sup := start-1, start+1
	for !stopped && (inf >= 0 || sup < len(col)) {
		gInf, gSup := sentinelNeverMove, sentinelNeverMove
		if inf >= 0 {
			gInf = col[inf]
		}
		if sup < len(col) {
			gSup = col[sup]
		}
		if gInf == sentinelNeverMove && gSup == sentinelNeverMove {
			break
		}
		if gInf >= gSup {
			stopped = consider(inf)
			inf--
		} else {
			stopped = consider(sup)
			sup++
		}
	}

	if bestI < 0 {
		return 0, 0, 0, uMax, false
	}
	return bestI, pSrcFound, bestTgt, bestUMax, true
}

func simulateMove(imb [][]float64, w []float64, pSrc, pTgt, nbrP int) [][]float64 {
	out := make([][]float64, len(imb))
	for c, row := range imb {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[c] = cp
	}
	for c, wc := range w {
		delta := float64(nbrP) * wc
		out[c][pSrc] -= delta
		out[c][pTgt] += delta
	}
	return out
}

func argmaxOf(imb [][]float64) (c, p int, max float64) {
	max = math.Inf(-1)
	for ci, row := range imb {
		for pi, v := range row {
			if v > max {
				c, p, max = ci, pi, v
			}
		}
	}
	return c, p, max
}

// Apply performs the move found by BestMove: updates parts, the internal
// imb matrix, and recomputes gains/inflection for every criterion's
// (pSrc,*) and (pTgt,*) columns -- the two parts whose imbalance changed.
func (t *Table) Apply(i, pSrc, pTgt int) {
	t.part.Parts[i] = pTgt
	for c, w := range t.normW[i] {
		delta := float64(t.nbrP) * w
		t.imb[c][pSrc] -= delta
		t.imb[c][pTgt] += delta
	}
	t.recomputeUMaxGlobal()
	for c := 0; c < t.nbrC; c++ {
		t.recomputeColumn(pSrc, c)
		t.recomputeColumn(pTgt, c)
	}
}

// Imb exposes the table's current imbalance matrix (imb[c][p]) for callers
// that need to report aggregate imbalance without recomputing it.
func (t *Table) Imb() [][]float64 { return t.imb }
