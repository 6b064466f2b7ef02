package league_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundplan/league"
)

func mustRoster(t *testing.T, teams ...league.Team) *league.Roster {
	t.Helper()
	r, err := league.NewRoster(teams...)
	require.NoError(t, err)

	return r
}

func TestNewFixture(t *testing.T) {
	f, err := league.NewFixture("DFC", "TFC")
	require.NoError(t, err)
	assert.Equal(t, "DFC-TFC", f.ID())
	assert.Equal(t, "DFC X TFC", f.String())
	assert.Equal(t, league.Fixture{Home: "TFC", Away: "DFC"}, f.Reverse())
	assert.Equal(t, f.Key(), f.Reverse().Key())

	_, err = league.NewFixture("DFC", "DFC")
	assert.ErrorIs(t, err, league.ErrSelfFixture)
	_, err = league.NewFixture("", "DFC")
	assert.ErrorIs(t, err, league.ErrEmptyTeam)
}

func TestFixture_SharesTeam(t *testing.T) {
	ab := league.Fixture{Home: "A", Away: "B"}
	assert.True(t, ab.SharesTeam(league.Fixture{Home: "B", Away: "C"}))
	assert.True(t, ab.SharesTeam(ab.Reverse()))
	assert.False(t, ab.SharesTeam(league.Fixture{Home: "C", Away: "D"}))
}

func TestNewRoster_Errors(t *testing.T) {
	_, err := league.NewRoster("A")
	assert.ErrorIs(t, err, league.ErrTooFewTeams)
	_, err = league.NewRoster("A", "")
	assert.ErrorIs(t, err, league.ErrEmptyTeam)
	_, err = league.NewRoster("A", "B", "A")
	assert.ErrorIs(t, err, league.ErrDuplicateTeam)
}

func TestRoster_FixturesOrder(t *testing.T) {
	r := mustRoster(t, "A", "B", "C")
	assert.Equal(t, []league.Fixture{
		{Home: "A", Away: "B"},
		{Home: "A", Away: "C"},
		{Home: "B", Away: "C"},
		{Home: "B", Away: "A"},
		{Home: "C", Away: "A"},
		{Home: "C", Away: "B"},
	}, r.Fixtures())
}

func TestRoster_SevenTeamsYields42(t *testing.T) {
	r := mustRoster(t, "DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC")
	fx := r.Fixtures()
	require.Len(t, fx, 42)

	seen := make(map[league.Fixture]bool, len(fx))
	for _, f := range fx {
		assert.NotEqual(t, f.Home, f.Away)
		assert.False(t, seen[f], "duplicate fixture %s", f.ID())
		seen[f] = true
	}
}

func TestForbiddenRounds_SymmetricLookup(t *testing.T) {
	tbl := league.NewForbiddenRounds()
	require.NoError(t, tbl.Add(league.Fixture{Home: "DFC", Away: "CFC"}, 1, 14))

	f := league.Fixture{Home: "DFC", Away: "CFC"}
	assert.True(t, tbl.IsForbidden(f, 1))
	assert.True(t, tbl.IsForbidden(f.Reverse(), 14))
	assert.False(t, tbl.IsForbidden(f, 2))
	assert.False(t, tbl.IsForbidden(league.Fixture{Home: "DFC", Away: "TFC"}, 1))
	assert.Equal(t, []int{1, 14}, tbl.Rounds(f.Reverse()))
	assert.Equal(t, 1, tbl.Len())

	var nilTbl *league.ForbiddenRounds
	assert.False(t, nilTbl.IsForbidden(f, 1))
	assert.Equal(t, 0, nilTbl.Len())
}

func TestForbiddenRounds_MergesOrientations(t *testing.T) {
	tbl := league.NewForbiddenRounds()
	require.NoError(t, tbl.Add(league.Fixture{Home: "A", Away: "B"}, 3))
	require.NoError(t, tbl.Add(league.Fixture{Home: "B", Away: "A"}, 1))
	assert.Equal(t, []int{1, 3}, tbl.Rounds(league.Fixture{Home: "A", Away: "B"}))
}

func TestForbiddenRounds_Validate(t *testing.T) {
	r := mustRoster(t, "A", "B", "C")

	tbl := league.NewForbiddenRounds()
	require.NoError(t, tbl.Add(league.Fixture{Home: "A", Away: "B"}, 1, 4))
	assert.NoError(t, tbl.Validate(r, 4))
	assert.ErrorIs(t, tbl.Validate(r, 3), league.ErrMalformedConstraint)

	unknown := league.NewForbiddenRounds()
	require.NoError(t, unknown.Add(league.Fixture{Home: "A", Away: "Z"}, 1))
	assert.ErrorIs(t, unknown.Validate(r, 4), league.ErrMalformedConstraint)

	assert.ErrorIs(t, tbl.Add(league.Fixture{Home: "A", Away: "B"}, 0), league.ErrMalformedConstraint)
	assert.ErrorIs(t, tbl.Add(league.Fixture{Home: "A", Away: "A"}, 1), league.ErrSelfFixture)
}

func TestHomeConflicts(t *testing.T) {
	h := league.NewHomeConflicts()
	require.NoError(t, h.Add("TFC", "OFC"))
	require.NoError(t, h.Add("AFC", "FFC"))

	assert.True(t, h.Conflicts("OFC", "TFC"))
	assert.True(t, h.Conflicts("TFC", "OFC"))
	assert.False(t, h.Conflicts("TFC", "AFC"))
	assert.Equal(t, []league.PairKey{{A: "AFC", B: "FFC"}, {A: "OFC", B: "TFC"}}, h.Pairs())

	assert.ErrorIs(t, h.Add("TFC", "TFC"), league.ErrMalformedConstraint)
	assert.ErrorIs(t, h.Add("", "TFC"), league.ErrEmptyTeam)

	r := mustRoster(t, "TFC", "OFC", "AFC")
	assert.ErrorIs(t, h.Validate(r), league.ErrMalformedConstraint)
	r = mustRoster(t, "TFC", "OFC", "AFC", "FFC")
	assert.NoError(t, h.Validate(r))
}
