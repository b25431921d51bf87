package core

import (
	"fmt"

	"github.com/katalvlaran/partkit"
)

// Mesh is the in-memory shape a Medit .mesh reader would populate:
// coordinates plus element blocks (Triangles, Quadrilaterals, Tetrahedra,
// ...), all already 0-based. Only the nodal/dual/hypergraph conversions
// below belong to this module; parsing the file format does not.
type Mesh struct {
	Dim      int
	Coords   [][]float64
	Elements [][]int
}

// MeshToNodalGraph builds the primal (nodal) graph: one vertex per mesh
// node, one edge between any two nodes that co-occur in an element. Nodes
// sharing more than one element accumulate edge weight equal to the number
// of shared elements.
func MeshToNodalGraph(m *Mesh) (*Topology, *Weights, error) {
	nbrN := len(m.Coords)
	type key struct{ u, v int }
	weight := make(map[key]float64)
	for _, elem := range m.Elements {
		for a := 0; a < len(elem); a++ {
			for b := a + 1; b < len(elem); b++ {
				u, v := elem[a], elem[b]
				if u > v {
					u, v = v, u
				}
				if u < 0 || v >= nbrN {
					return nil, nil, wrapErr(partkit.KindInvalidInput, "MeshToNodalGraph",
						fmt.Errorf("%w: element references vertex out of range", ErrInvalidEdge))
				}
				weight[key{u, v}]++
			}
		}
	}
	edges := make([][2]int, 0, len(weight))
	rows := make([][]float64, 0, len(weight))
	for k, w := range weight {
		edges = append(edges, [2]int{k.u, k.v})
		rows = append(rows, []float64{w})
	}
	topo, err := NewGraphTopology(nbrN, edges)
	if err != nil {
		return nil, nil, err
	}
	topo.Dim = m.Dim
	topo.Coords = m.Coords
	ew, err := NewEdgeWeights(rows)
	if err != nil {
		return nil, nil, err
	}
	return topo, ew, nil
}

// MeshToDualGraph builds the dual graph: one vertex per mesh element, an
// edge between two elements that share at least one node, weighted by the
// number of shared nodes (a common proxy for the shared-face rule).
func MeshToDualGraph(m *Mesh) (*Topology, *Weights, error) {
	nbrElems := len(m.Elements)
	nodeElems := make(map[int][]int)
	for e, elem := range m.Elements {
		for _, n := range elem {
			nodeElems[n] = append(nodeElems[n], e)
		}
	}
	type key struct{ a, b int }
	shared := make(map[key]float64)
	for _, elems := range nodeElems {
		for a := 0; a < len(elems); a++ {
			for b := a + 1; b < len(elems); b++ {
				u, v := elems[a], elems[b]
				if u == v {
					continue
				}
				if u > v {
					u, v = v, u
				}
				shared[key{u, v}]++
			}
		}
	}
	edges := make([][2]int, 0, len(shared))
	rows := make([][]float64, 0, len(shared))
	for k, w := range shared {
		edges = append(edges, [2]int{k.a, k.b})
		rows = append(rows, []float64{w})
	}
	topo, err := NewGraphTopology(nbrElems, edges)
	if err != nil {
		return nil, nil, err
	}
	ew, err := NewEdgeWeights(rows)
	if err != nil {
		return nil, nil, err
	}
	return topo, ew, nil
}

// MeshToHypergraph represents each mesh element as one hyperedge over its
// incident nodes -- the exact incidence structure of the mesh, with none of
// the pairwise flattening MeshToNodalGraph performs.
func MeshToHypergraph(m *Mesh) (*Topology, *Weights, error) {
	nbrN := len(m.Coords)
	edges := make([][]int, len(m.Elements))
	rows := make([][]float64, len(m.Elements))
	for e, elem := range m.Elements {
		cp := make([]int, len(elem))
		copy(cp, elem)
		edges[e] = cp
		rows[e] = []float64{1}
	}
	topo, err := NewHypergraphTopology(nbrN, edges)
	if err != nil {
		return nil, nil, err
	}
	topo.Dim = m.Dim
	topo.Coords = m.Coords
	hw, err := NewHyperedgeWeights(rows)
	if err != nil {
		return nil, nil, err
	}
	return topo, hw, nil
}
