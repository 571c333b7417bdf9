package topology

import "sort"

// FreeEdges returns every canonical edge with exactly one incident face.
// Output order is unspecified beyond the index's first-seen order.
func FreeEdges(idx *Index) []Edge {
	var out []Edge
	for _, e := range idx.Edges() {
		if fs, _ := idx.Incidence(e); len(fs) == 1 {
			out = append(out, e)
		}
	}
	return out
}

// NonManifoldVertices returns every vertex incident to four or more free
// edges. tol is accepted for interface parity with the external detector
// surface but is currently unused.
func NonManifoldVertices(freeEdges []Edge, _ float64) []int32 {
	degree := make(map[int32]int)
	for _, e := range freeEdges {
		degree[e.A]++
		degree[e.B]++
	}

	var out []int32
	for v, d := range degree {
		if d >= 4 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
