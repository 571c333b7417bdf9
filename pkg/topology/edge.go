// Package topology builds edge-incidence indexes over a triangle mesh and
// derives the free-edge, overlapping-edge, and non-manifold-vertex sets from
// them.
package topology

// Edge is a canonical undirected topological edge: the lower vertex index
// first. Two faces sharing an edge by vertex index produce equal Edges
// regardless of winding.
type Edge struct {
	A, B int32
}

func canonicalEdge(a, b int32) Edge {
	if a <= b {
		return Edge{a, b}
	}
	return Edge{b, a}
}

// Index maps each canonical edge to the faces incident to it, in insertion
// order.
type Index struct {
	faces map[Edge][]int32
	// order preserves first-seen edge order for deterministic iteration.
	order []Edge
}

// BuildEdgeIndex walks every face's three edges and records face incidence.
func BuildEdgeIndex(faces [][3]int32) *Index {
	idx := &Index{
		faces: make(map[Edge][]int32, len(faces)*3),
	}
	for f, tri := range faces {
		edges := [3]Edge{
			canonicalEdge(tri[0], tri[1]),
			canonicalEdge(tri[1], tri[2]),
			canonicalEdge(tri[2], tri[0]),
		}
		for _, e := range edges {
			if _, seen := idx.faces[e]; !seen {
				idx.order = append(idx.order, e)
			}
			idx.faces[e] = append(idx.faces[e], int32(f))
		}
	}
	return idx
}

// Incidence returns the faces touching e, and whether e was observed at all.
func (idx *Index) Incidence(e Edge) ([]int32, bool) {
	fs, ok := idx.faces[e]
	return fs, ok
}

// Edges returns every distinct canonical edge in first-seen order.
func (idx *Index) Edges() []Edge {
	return idx.order
}
