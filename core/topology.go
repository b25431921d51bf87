package core

import (
	"fmt"

	"github.com/katalvlaran/partkit"
)

// Kind distinguishes a graph topology (edges have exactly two endpoints)
// from a hypergraph topology (edges are non-empty vertex sets).
type Kind int

const (
	// KindGraph marks a topology whose every edge has exactly two endpoints.
	KindGraph Kind = iota
	// KindHypergraph marks a topology whose edges may have any number of
	// (non-zero) endpoints.
	KindHypergraph
)

func (k Kind) String() string {
	if k == KindHypergraph {
		return "hypergraph"
	}
	return "graph"
}

// Incidence is one entry of a vertex's adjacency: a neighbor reached via a
// specific edge. Hypergraph adjacency carries one Incidence per other
// endpoint of each incident hyperedge, so a single hyperedge id may repeat
// across a vertex's adjacency (once per co-endpoint).
type Incidence struct {
	Neighbor int
	Edge     int
}

// Topology holds the structural shape of a graph or hypergraph: vertex and
// edge counts, an adjacency list keyed by vertex, the edges table (endpoint
// lists), and optional passive geometric attributes.
//
// Invariants (checked by Validate, and by every constructor below):
//
//	every edge id in a vertex's adjacency is present in Edges with that
//	vertex among its endpoints; for KindGraph, every edge appears exactly
//	twice across all adjacency lists (once per endpoint).
type Topology struct {
	Kind Kind

	NbrN int
	NbrE int

	// Adjacency[i] lists (neighbor, edge) incidences of vertex i.
	Adjacency [][]Incidence

	// Edges[e] is the endpoint list of edge e. len == 2 for KindGraph.
	Edges [][]int

	// Dim and Coords are optional passive geometric attributes, carried
	// through coarsening unchanged (inherited from a representative fine
	// vertex). Coords is nil when no geometry was supplied.
	Dim    int
	Coords [][]float64
}

// NewGraphTopology builds a graph topology from nbrN vertices and a list of
// edges, each an endpoint pair. Adjacency is derived: each endpoint gets one
// Incidence to the other.
func NewGraphTopology(nbrN int, edges [][2]int) (*Topology, error) {
	if nbrN < 0 {
		return nil, wrapErr(partkit.KindInvalidInput, "NewGraphTopology", ErrNegativeCount)
	}
	edgeTable := make([][]int, len(edges))
	adj := make([][]Incidence, nbrN)
	for e, ep := range edges {
		u, v := ep[0], ep[1]
		if u < 0 || u >= nbrN || v < 0 || v >= nbrN {
			return nil, wrapErr(partkit.KindInvalidInput, "NewGraphTopology",
				fmt.Errorf("%w: edge %d endpoint out of range", ErrInvalidEdge, e))
		}
		edgeTable[e] = []int{u, v}
		adj[u] = append(adj[u], Incidence{Neighbor: v, Edge: e})
		adj[v] = append(adj[v], Incidence{Neighbor: u, Edge: e})
	}
	t := &Topology{
		Kind:      KindGraph,
		NbrN:      nbrN,
		NbrE:      len(edges),
		Adjacency: adj,
		Edges:     edgeTable,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewHypergraphTopology builds a hypergraph topology from nbrN vertices and
// a list of hyperedges, each a (possibly large) set of endpoint vertex ids.
// Every hyperedge must be non-empty.
func NewHypergraphTopology(nbrN int, edges [][]int) (*Topology, error) {
	if nbrN < 0 {
		return nil, wrapErr(partkit.KindInvalidInput, "NewHypergraphTopology", ErrNegativeCount)
	}
	edgeTable := make([][]int, len(edges))
	adj := make([][]Incidence, nbrN)
	for e, ends := range edges {
		if len(ends) == 0 {
			return nil, wrapErr(partkit.KindInvalidInput, "NewHypergraphTopology",
				fmt.Errorf("%w: hyperedge %d is empty", ErrInvalidEdge, e))
		}
		cp := make([]int, len(ends))
		copy(cp, ends)
		edgeTable[e] = cp
		for _, u := range ends {
			if u < 0 || u >= nbrN {
				return nil, wrapErr(partkit.KindInvalidInput, "NewHypergraphTopology",
					fmt.Errorf("%w: hyperedge %d endpoint out of range", ErrInvalidEdge, e))
			}
		}
		for _, u := range ends {
			for _, v := range ends {
				if u == v {
					continue
				}
				adj[u] = append(adj[u], Incidence{Neighbor: v, Edge: e})
			}
		}
	}
	t := &Topology{
		Kind:      KindHypergraph,
		NbrN:      nbrN,
		NbrE:      len(edges),
		Adjacency: adj,
		Edges:     edgeTable,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the invariants documented on Topology: every adjacency
// incidence references a real edge that lists that vertex as an endpoint,
// and (for graphs) every edge is seen exactly twice across all adjacency
// lists.
func (t *Topology) Validate() error {
	if len(t.Adjacency) != t.NbrN {
		return wrapErr(partkit.KindInvariantViolation, "Validate",
			fmt.Errorf("%w: adjacency has %d rows, want %d", ErrDimensionMismatch, len(t.Adjacency), t.NbrN))
	}
	if len(t.Edges) != t.NbrE {
		return wrapErr(partkit.KindInvariantViolation, "Validate",
			fmt.Errorf("%w: edges has %d rows, want %d", ErrDimensionMismatch, len(t.Edges), t.NbrE))
	}
	seen := make([]int, t.NbrE)
	for i, row := range t.Adjacency {
		for _, inc := range row {
			if inc.Edge < 0 || inc.Edge >= t.NbrE {
				return wrapErr(partkit.KindInvariantViolation, "Validate",
					fmt.Errorf("%w: vertex %d references edge %d", ErrDanglingAdjacency, i, inc.Edge))
			}
			ends := t.Edges[inc.Edge]
			if !containsInt(ends, i) {
				return wrapErr(partkit.KindInvariantViolation, "Validate",
					fmt.Errorf("%w: edge %d does not list vertex %d", ErrDanglingAdjacency, inc.Edge, i))
			}
			if !containsInt(ends, inc.Neighbor) {
				return wrapErr(partkit.KindInvariantViolation, "Validate",
					fmt.Errorf("%w: edge %d does not list neighbor %d", ErrDanglingAdjacency, inc.Edge, inc.Neighbor))
			}
			seen[inc.Edge]++
		}
	}
	if t.Kind == KindGraph {
		for e, ends := range t.Edges {
			if len(ends) != 2 {
				return wrapErr(partkit.KindInvariantViolation, "Validate",
					fmt.Errorf("%w: graph edge %d has %d endpoints", ErrInvalidEdge, e, len(ends)))
			}
			// self-loops are still counted twice, once per traversal direction
			if seen[e] != 2 {
				return wrapErr(partkit.KindInvariantViolation, "Validate",
					fmt.Errorf("%w: graph edge %d seen %d times, want 2", ErrInvalidEdge, e, seen[e]))
			}
		}
	}
	return nil
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
