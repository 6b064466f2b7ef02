// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the Stats snapshot.

package core

// Stats produces a read-only snapshot of catalog sizes and the degree range.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot the vertex IDs.
//   - Stage 2: Under muEdgeAdj.RLock, count edges and per-vertex degree.
//
// The two phases never hold both locks at once. On an empty graph
// MinDegree and MaxDegree are 0.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var (
		id  string
		deg int
	)
	for i := range ids {
		id = ids[i]
		deg = 0
		for _, bucket := range g.adjacencyList[id] {
			deg += len(bucket)
		}
		if i == 0 || deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
		if i == 0 || deg < stats.MinDegree {
			stats.MinDegree = deg
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
