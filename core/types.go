// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge is an undirected connection between two vertices.
// From and To keep the orientation used at insertion time for stable output only.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint passed to AddEdge.
	From string

	// To is the second endpoint passed to AddEdge.
	To string

	seq uint64 // creation sequence, used for ordering
}

// Graph is an in-memory undirected graph.
//
// muVert protects vertices and order; muEdgeAdj protects edges, adjacency and nextEdgeID.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges, adjacencyList, nextEdgeID

	// Storage
	nextEdgeID uint64
	vertices   map[string]*Vertex
	order      []string // vertex IDs in insertion order
	edges      map[string]*Edge

	// adjacencyList[a][b][Edge.ID] = struct{}{}, mirrored for b→a
	adjacencyList map[string]map[string]map[string]struct{}
}

// GraphStats is a read-only snapshot of catalog sizes and the degree range.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxDegree   int
	MinDegree   int
}

// NewGraph creates an empty simple Graph: self-loops and parallel edges are rejected.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
}
