// SPDX-License-Identifier: MIT
//
// Package conflict builds the fixture conflict graph: one vertex per fixture,
// one undirected edge per pair of fixtures that may not share a round.
//
// Edge rules, evaluated once per unordered pair {A, B}:
//
//  1. A and B share at least one team. This also joins every fixture with
//     its reverse.
//  2. The home teams of A and B form a HomeConflicts pair (either order).
//     Only the home slots are compared.
//
// An edge present for both reasons is stored once. The graph is immutable
// after Build and safe for concurrent reads.
//
// Vertices of the underlying core.Graph are keyed by build-order index, not
// by fixture name: team identifiers are opaque, so "A-B" hosting "C" and "A"
// hosting "B-C" are distinct fixtures. Neighbor lists, degrees and the edge
// listing are all read back from that graph.
//
// Build reports an empty fixture list as ErrNoFixtures; schedule.Solve
// reports a nil or empty graph as schedule.ErrConfiguration.
//
// Complexity: Build is O(F²) in the fixture count F, which is fine at league
// scale and not optimized for large F.
package conflict

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/roundplan/core"
	"github.com/katalvlaran/roundplan/league"
)

const methodBuild = "conflict.Build"

var (
	// ErrNoFixtures indicates Build was called with an empty fixture list.
	ErrNoFixtures = errors.New("conflict: fixture list is empty")

	// ErrDuplicateFixture indicates the same ordered fixture appears twice.
	ErrDuplicateFixture = errors.New("conflict: duplicate fixture")
)

// Graph is an immutable conflict graph over an ordered fixture list.
// Fixture indices follow the order given to Build.
type Graph struct {
	core     *core.Graph
	fixtures []league.Fixture
	index    map[league.Fixture]int
	adj      [][]int // adj[i]: neighbor indices of fixture i, ascending; read from core
}

// vertexID is the core vertex key of fixture index i.
func vertexID(i int) string { return strconv.Itoa(i) }

// vertexIndex inverts vertexID.
func vertexIndex(id string) (int, error) { return strconv.Atoi(id) }

// Build derives the conflict graph for fixtures under the home-conflict table.
// homes may be nil.
//
// Errors:
//   - ErrNoFixtures: len(fixtures) == 0.
//   - league.ErrEmptyTeam, league.ErrSelfFixture: malformed fixture.
//   - ErrDuplicateFixture: the same ordered fixture is listed twice.
//   - league.ErrMalformedConstraint: a home-conflict pair names a team that
//     plays in none of the fixtures.
func Build(fixtures []league.Fixture, homes *league.HomeConflicts) (*Graph, error) {
	if len(fixtures) == 0 {
		return nil, ErrNoFixtures
	}

	g := &Graph{
		core:     core.NewGraph(),
		fixtures: make([]league.Fixture, len(fixtures)),
		index:    make(map[league.Fixture]int, len(fixtures)),
		adj:      make([][]int, len(fixtures)),
	}
	copy(g.fixtures, fixtures)

	// Stage 1: register vertices in fixture order and collect the team set.
	teams := make(map[league.Team]struct{})
	for i, f := range g.fixtures {
		if f.Home == "" || f.Away == "" {
			return nil, fmt.Errorf("%s: fixture %d: %w", methodBuild, i, league.ErrEmptyTeam)
		}
		if f.Home == f.Away {
			return nil, fmt.Errorf("%s: fixture %s: %w", methodBuild, f.ID(), league.ErrSelfFixture)
		}
		if _, dup := g.index[f]; dup {
			return nil, fmt.Errorf("%s: fixture %s: %w", methodBuild, f.ID(), ErrDuplicateFixture)
		}
		g.index[f] = i
		if err := g.core.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodBuild, f.ID(), err)
		}
		teams[f.Home] = struct{}{}
		teams[f.Away] = struct{}{}
	}

	// Stage 2: reject home-conflict entries for teams outside the fixture set.
	for _, p := range homes.Pairs() {
		_, okA := teams[p.A]
		_, okB := teams[p.B]
		if !okA || !okB {
			return nil, fmt.Errorf("%s: home conflict %s/%s: unknown team: %w",
				methodBuild, p.A, p.B, league.ErrMalformedConstraint)
		}
	}

	// Stage 3: single pass over every unordered pair {i, j}, i<j.
	var (
		i, j int
		a, b league.Fixture
	)
	for i = 0; i < len(g.fixtures); i++ {
		a = g.fixtures[i]
		for j = i + 1; j < len(g.fixtures); j++ {
			b = g.fixtures[j]
			if !a.SharesTeam(b) && !homes.Conflicts(a.Home, b.Home) {
				continue
			}
			if _, err := g.core.AddEdge(vertexID(i), vertexID(j)); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s, %s): %w", methodBuild, a.ID(), b.ID(), err)
			}
		}
	}

	// Stage 4: cache ascending neighbor indices for the solver's hot path.
	for i = range g.fixtures {
		ids, err := g.core.NeighborIDs(vertexID(i))
		if err != nil {
			return nil, fmt.Errorf("%s: NeighborIDs(%d): %w", methodBuild, i, err)
		}
		nb := make([]int, len(ids))
		for k, id := range ids {
			if nb[k], err = vertexIndex(id); err != nil {
				return nil, fmt.Errorf("%s: vertex %q: %w", methodBuild, id, err)
			}
		}
		sort.Ints(nb)
		g.adj[i] = nb
	}

	return g, nil
}

// Len returns the number of fixtures (vertices).
func (g *Graph) Len() int { return len(g.fixtures) }

// Fixture returns the fixture at index i of the build order.
func (g *Graph) Fixture(i int) league.Fixture { return g.fixtures[i] }

// Fixtures returns a copy of the fixtures in build order.
func (g *Graph) Fixtures() []league.Fixture {
	out := make([]league.Fixture, len(g.fixtures))
	copy(out, g.fixtures)

	return out
}

// Index returns the build-order index of f.
func (g *Graph) Index(f league.Fixture) (int, bool) {
	i, ok := g.index[f]

	return i, ok
}

// Neighbors returns the ascending neighbor indices of fixture i.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Degree returns the number of fixtures that conflict with fixture i.
func (g *Graph) Degree(i int) int {
	d, err := g.core.Degree(vertexID(i))
	if err != nil {
		return 0
	}

	return d
}

// Conflicts reports whether a and b are joined by a conflict edge.
func (g *Graph) Conflicts(a, b league.Fixture) bool {
	i, okA := g.index[a]
	j, okB := g.index[b]
	if !okA || !okB {
		return false
	}

	return g.core.HasEdge(vertexID(i), vertexID(j))
}

// EdgeIndices returns every conflict edge as a pair of fixture indices
// (lower index first), in creation order.
func (g *Graph) EdgeIndices() [][2]int {
	edges := g.core.Edges()
	out := make([][2]int, 0, len(edges))
	for _, e := range edges {
		from, errF := vertexIndex(e.From)
		to, errT := vertexIndex(e.To)
		if errF != nil || errT != nil {
			continue // every vertex is registered through vertexID
		}
		out = append(out, [2]int{from, to})
	}

	return out
}

// Edges returns every conflict edge as a fixture pair, in creation order.
func (g *Graph) Edges() [][2]league.Fixture {
	idx := g.EdgeIndices()
	out := make([][2]league.Fixture, len(idx))
	for k, e := range idx {
		out[k] = [2]league.Fixture{g.fixtures[e[0]], g.fixtures[e[1]]}
	}

	return out
}

// EdgeCount returns the number of conflict edges.
func (g *Graph) EdgeCount() int { return g.core.EdgeCount() }

// Stats returns the underlying graph snapshot (sizes and degree range).
func (g *Graph) Stats() *core.GraphStats { return g.core.Stats() }
