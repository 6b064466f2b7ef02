package schedule

import (
	"github.com/katalvlaran/roundplan/conflict"
	"github.com/katalvlaran/roundplan/league"
)

// Admissible reports whether fixture index i may be placed in round given
// the current assignment and load. It has no side effects and must be
// evaluated fresh for every trial.
//
// Checks, short-circuiting on the first failure:
//  1. forbidden: round is forbidden for the fixture or its reverse;
//  2. capacity:  load.Count(round) >= capacity;
//  3. conflict:  an assigned neighbor of i already sits in round.
func Admissible(
	g *conflict.Graph,
	i, round int,
	asg *Assignment,
	load *RoundLoad,
	forbidden *league.ForbiddenRounds,
	capacity int,
) bool {
	if forbidden.IsForbidden(g.Fixture(i), round) {
		return false
	}
	if load.Count(round) >= capacity {
		return false
	}
	for _, j := range g.Neighbors(i) {
		if asg.RoundAt(j) == round {
			return false
		}
	}

	return true
}
