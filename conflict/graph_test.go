package conflict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundplan/conflict"
	"github.com/katalvlaran/roundplan/league"
)

var sevenTeams = []league.Team{"DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"}

func fixturesOf(t *testing.T, teams ...league.Team) []league.Fixture {
	t.Helper()
	r, err := league.NewRoster(teams...)
	require.NoError(t, err)

	return r.Fixtures()
}

func homePairs(t *testing.T, pairs ...[2]league.Team) *league.HomeConflicts {
	t.Helper()
	h := league.NewHomeConflicts()
	for _, p := range pairs {
		require.NoError(t, h.Add(p[0], p[1]))
	}

	return h
}

func TestBuild_Errors(t *testing.T) {
	_, err := conflict.Build(nil, nil)
	assert.ErrorIs(t, err, conflict.ErrNoFixtures)

	_, err = conflict.Build([]league.Fixture{{Home: "A", Away: "A"}}, nil)
	assert.ErrorIs(t, err, league.ErrSelfFixture)

	_, err = conflict.Build([]league.Fixture{{Home: "A", Away: ""}}, nil)
	assert.ErrorIs(t, err, league.ErrEmptyTeam)

	ab := league.Fixture{Home: "A", Away: "B"}
	_, err = conflict.Build([]league.Fixture{ab, ab}, nil)
	assert.ErrorIs(t, err, conflict.ErrDuplicateFixture)

	_, err = conflict.Build(fixturesOf(t, "A", "B", "C"), homePairs(t, [2]league.Team{"A", "Z"}))
	assert.ErrorIs(t, err, league.ErrMalformedConstraint)
}

func TestBuild_ThreeTeamsIsComplete(t *testing.T) {
	g, err := conflict.Build(fixturesOf(t, "A", "B", "C"), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 15, g.EdgeCount(), "any two fixtures among three teams share a team")
}

func TestBuild_SharedTeamAndReverse(t *testing.T) {
	g, err := conflict.Build(fixturesOf(t, "A", "B", "C", "D"), nil)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 54, g.EdgeCount())

	ab := league.Fixture{Home: "A", Away: "B"}
	assert.True(t, g.Conflicts(ab, ab.Reverse()))
	assert.True(t, g.Conflicts(ab, league.Fixture{Home: "C", Away: "B"}))
	assert.False(t, g.Conflicts(ab, league.Fixture{Home: "C", Away: "D"}))
	assert.False(t, g.Conflicts(ab, league.Fixture{Home: "D", Away: "C"}))
}

func TestBuild_HomeConflictIsHomeSlotOnly(t *testing.T) {
	g, err := conflict.Build(fixturesOf(t, "A", "B", "C", "D"), homePairs(t, [2]league.Team{"B", "A"}))
	require.NoError(t, err)
	assert.Equal(t, 56, g.EdgeCount())

	// Both host: conflict.
	assert.True(t, g.Conflicts(league.Fixture{Home: "A", Away: "C"}, league.Fixture{Home: "B", Away: "D"}))
	assert.True(t, g.Conflicts(league.Fixture{Home: "B", Away: "C"}, league.Fixture{Home: "A", Away: "D"}))
	// A hosts, B visits: no shared team and no home clash.
	assert.False(t, g.Conflicts(league.Fixture{Home: "A", Away: "C"}, league.Fixture{Home: "D", Away: "B"}))
	// Both visit.
	assert.False(t, g.Conflicts(league.Fixture{Home: "C", Away: "A"}, league.Fixture{Home: "D", Away: "B"}))
}

func TestBuild_SevenTeamLeague(t *testing.T) {
	fx := fixturesOf(t, sevenTeams...)

	plain, err := conflict.Build(fx, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, plain.Len())
	assert.Equal(t, 441, plain.EdgeCount())

	g, err := conflict.Build(fx, homePairs(t,
		[2]league.Team{"TFC", "OFC"},
		[2]league.Team{"AFC", "FFC"},
	))
	require.NoError(t, err)
	assert.Equal(t, 481, g.EdgeCount())

	st := g.Stats()
	assert.Equal(t, 42, st.VertexCount)
	assert.Equal(t, 481, st.EdgeCount)
	assert.Equal(t, 21, st.MinDegree)
}

func TestGraph_NeighborsSymmetricAndSorted(t *testing.T) {
	g, err := conflict.Build(fixturesOf(t, "A", "B", "C", "D", "E"), homePairs(t, [2]league.Team{"A", "E"}))
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		nbs := g.Neighbors(i)
		for k, j := range nbs {
			assert.NotEqual(t, i, j, "no self-loops")
			if k > 0 {
				assert.Less(t, nbs[k-1], j)
			}
			assert.Contains(t, g.Neighbors(j), i)
			assert.True(t, g.Conflicts(g.Fixture(i), g.Fixture(j)))
		}
	}

	edges := g.Edges()
	assert.Len(t, edges, g.EdgeCount())
	for _, e := range edges {
		assert.True(t, g.Conflicts(e[1], e[0]))
	}
}

func TestGraph_IndexAndFixturesCopy(t *testing.T) {
	fx := fixturesOf(t, "A", "B", "C")
	g, err := conflict.Build(fx, nil)
	require.NoError(t, err)

	i, ok := g.Index(league.Fixture{Home: "C", Away: "A"})
	require.True(t, ok)
	assert.Equal(t, 4, i)
	_, ok = g.Index(league.Fixture{Home: "C", Away: "Z"})
	assert.False(t, ok)

	out := g.Fixtures()
	out[0] = league.Fixture{Home: "X", Away: "Y"}
	assert.Equal(t, fx[0], g.Fixture(0))

	// Build copies its input.
	fx[1] = league.Fixture{Home: "X", Away: "Y"}
	assert.Equal(t, league.Fixture{Home: "A", Away: "C"}, g.Fixture(1))
}

func TestBuild_HyphenatedTeamNames(t *testing.T) {
	// "A-B" hosting "C" and "A" hosting "B-C" print alike but are distinct.
	abC := league.Fixture{Home: "A-B", Away: "C"}
	aBC := league.Fixture{Home: "A", Away: "B-C"}
	g, err := conflict.Build([]league.Fixture{abC, aBC}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Stats().VertexCount)
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Conflicts(abC, aBC))

	g, err = conflict.Build(fixturesOf(t, "A-B", "C", "A", "B-C"), nil)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 12, g.Stats().VertexCount)
	assert.Equal(t, 54, g.EdgeCount())
	assert.True(t, g.Conflicts(abC, league.Fixture{Home: "A-B", Away: "A"}))
	assert.False(t, g.Conflicts(abC, aBC))
}

func TestGraph_DegreeAndEdgeIndices(t *testing.T) {
	g, err := conflict.Build(fixturesOf(t, "A", "B", "C", "D"), nil)
	require.NoError(t, err)

	// Every fixture meets 4 others through its home team and 4 through its
	// away team, plus its reverse.
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, 9, g.Degree(i))
		assert.Len(t, g.Neighbors(i), 9)
	}

	idx := g.EdgeIndices()
	require.Len(t, idx, 54)
	assert.Equal(t, [2]int{0, 1}, idx[0])
	for _, e := range idx {
		assert.Less(t, e[0], e[1])
	}
	assert.Equal(t, [2]league.Fixture{g.Fixture(0), g.Fixture(1)}, g.Edges()[0])
}
