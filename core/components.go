// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components of the vertex–hyperedge incidence structure.
// Policy:
//   - Two vertices are connected when a chain of shared hyperedges joins them.
//   - Isolated vertices form singleton components.
//   - Output is deterministic: components ordered by their first vertex in
//     insertion order, members in discovery order.

package core

// componentWalker holds breadth-first search state over the incidence structure.
type componentWalker struct {
	h         *Hypergraph
	incident  map[int][]int // vertex id → positions in h.edges
	queue     []int
	visited   map[int]bool
	edgesSeen []bool
}

// Components returns the vertex ids of every connected component.
//
// Implementation:
//   - Stage 1: Build vertex → incident edge positions.
//   - Stage 2: From each unvisited vertex, run a BFS that expands a vertex to
//     all members of its not-yet-expanded hyperedges.
//
// Complexity:
//   - Time O(V + Σ|e|), Space O(V + Σ|e|). Each hyperedge is expanded once.
func (h *Hypergraph) Components() [][]int {
	w := &componentWalker{
		h:         h,
		incident:  make(map[int][]int, len(h.vertices)),
		queue:     make([]int, 0, len(h.vertices)),
		visited:   make(map[int]bool, len(h.vertices)),
		edgesSeen: make([]bool, len(h.edges)),
	}
	for i, e := range h.edges {
		for _, v := range e.Vertices {
			w.incident[v] = append(w.incident[v], i)
		}
	}

	var out [][]int
	for _, v := range h.vertices {
		if w.visited[v.ID] {
			continue
		}
		out = append(out, w.walk(v.ID))
	}

	return out
}

func (w *componentWalker) walk(start int) []int {
	w.queue = append(w.queue[:0], start)
	w.visited[start] = true
	comp := []int{start}

	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for _, pos := range w.incident[u] {
			if w.edgesSeen[pos] {
				continue
			}
			w.edgesSeen[pos] = true
			for _, v := range w.h.edges[pos].Vertices {
				if w.visited[v] {
					continue
				}
				w.visited[v] = true
				w.queue = append(w.queue, v)
				comp = append(comp, v)
			}
		}
	}

	return comp
}
