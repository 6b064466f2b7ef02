// Package schedule_test provides small fixtures shared across *_test.go files.
package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundplan/conflict"
	"github.com/katalvlaran/roundplan/league"
)

// The seven-team league and its constraint tables.
var (
	sevenTeams = []league.Team{"DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"}

	sevenHomes = [][2]league.Team{
		{"TFC", "OFC"},
		{"AFC", "FFC"},
	}

	sevenForbidden = map[league.Fixture][]int{
		{Home: "DFC", Away: "CFC"}: {1, 14},
		{Home: "LFC", Away: "FFC"}: {7, 13},
		{Home: "OFC", Away: "LFC"}: {10, 11},
		{Home: "AFC", Away: "FFC"}: {12, 13},
		{Home: "CFC", Away: "TFC"}: {2, 3},
	}
)

const (
	sevenRounds   = 14
	sevenCapacity = 3
)

// buildGraph returns the conflict graph of the full double round-robin.
func buildGraph(t *testing.T, teams []league.Team, homes [][2]league.Team) *conflict.Graph {
	t.Helper()
	r, err := league.NewRoster(teams...)
	require.NoError(t, err)
	h := league.NewHomeConflicts()
	for _, p := range homes {
		require.NoError(t, h.Add(p[0], p[1]))
	}
	g, err := conflict.Build(r.Fixtures(), h)
	require.NoError(t, err)

	return g
}

// forbiddenTable converts a literal map into a ForbiddenRounds table.
func forbiddenTable(t *testing.T, entries map[league.Fixture][]int) *league.ForbiddenRounds {
	t.Helper()
	tbl := league.NewForbiddenRounds()
	for f, rounds := range entries {
		require.NoError(t, tbl.Add(f, rounds...))
	}

	return tbl
}

// allRounds returns 1..n.
func allRounds(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
