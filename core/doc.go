// Package core provides a thread-safe, in-memory simple undirected Graph used
// as the substrate for fixture conflict graphs.
//
// The Graph G = (V,E) is small:
//
//   - Undirected, unweighted edges mirrored in a nested adjacency map:
//     adjacencyList[a][b][edgeID] = struct{}{}
//   - Self-loops and parallel edges are rejected.
//   - Monotonic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), always acquired in that order.
//
// Vertex IDs are opaque: callers needing an injective key for composite
// values (such as fixtures) pass their own index.
//
// Determinism:
//
//	Stats()         insertion order
//	Edges()         creation order (Edge.ID sequence)
//	NeighborIDs()   unique, sorted lexicographically ascending
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - parallel edge.
package core
