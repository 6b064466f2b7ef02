package schedule

import (
	"fmt"

	"github.com/katalvlaran/roundplan/conflict"
	"github.com/katalvlaran/roundplan/league"
)

// unassigned marks a fixture without a committed round.
const unassigned = 0

// Assignment maps fixtures of a conflict graph to rounds.
// It has no exported mutators: only the solver writes to it during search,
// and the Assignment a Result carries is read-only.
type Assignment struct {
	graph  *conflict.Graph
	rounds []int // by fixture index; unassigned == 0
	count  int
}

// NewAssignment returns an empty assignment over g's fixtures.
func NewAssignment(g *conflict.Graph) *Assignment {
	return &Assignment{graph: g, rounds: make([]int, g.Len())}
}

// NewAssignmentFrom builds a read-only assignment over g from a
// fixture→round plan, e.g. a schedule produced elsewhere that is to be
// checked with Verify. Fixtures missing from plan stay unassigned.
//
// Errors:
//   - ErrInvalidAssignment: a fixture is not in g or a round is < 1.
func NewAssignmentFrom(g *conflict.Graph, plan map[league.Fixture]int) (*Assignment, error) {
	a := NewAssignment(g)
	for f, r := range plan {
		i, ok := g.Index(f)
		if !ok {
			return nil, fmt.Errorf("schedule.NewAssignmentFrom: fixture %s not in graph: %w", f, ErrInvalidAssignment)
		}
		if r < 1 {
			return nil, fmt.Errorf("schedule.NewAssignmentFrom: fixture %s: round %d: %w", f, r, ErrInvalidAssignment)
		}
		a.set(i, r)
	}

	return a, nil
}

// Round returns the round of f and whether f is assigned.
func (a *Assignment) Round(f league.Fixture) (int, bool) {
	i, ok := a.graph.Index(f)
	if !ok || a.rounds[i] == unassigned {
		return 0, false
	}

	return a.rounds[i], true
}

// RoundAt returns the round of fixture index i, or 0 if unassigned.
func (a *Assignment) RoundAt(i int) int { return a.rounds[i] }

// Assigned returns the number of assigned fixtures.
func (a *Assignment) Assigned() int { return a.count }

// Complete reports whether every fixture is assigned.
func (a *Assignment) Complete() bool { return a.count == len(a.rounds) }

// Graph returns the conflict graph the assignment is defined over.
func (a *Assignment) Graph() *conflict.Graph { return a.graph }

// Map returns a fixture→round copy of the assigned entries.
func (a *Assignment) Map() map[league.Fixture]int {
	out := make(map[league.Fixture]int, a.count)
	for i, r := range a.rounds {
		if r != unassigned {
			out[a.graph.Fixture(i)] = r
		}
	}

	return out
}

// ByRound groups assigned fixtures into a slice of length rounds: element k
// holds the fixtures of round k+1 in graph order. Fixtures assigned to a
// round above rounds are left out.
func (a *Assignment) ByRound(rounds int) [][]league.Fixture {
	out := make([][]league.Fixture, rounds)
	for i, r := range a.rounds {
		if r != unassigned && r <= rounds {
			out[r-1] = append(out[r-1], a.graph.Fixture(i))
		}
	}

	return out
}

func (a *Assignment) set(i, round int) {
	if a.rounds[i] == unassigned {
		a.count++
	}
	a.rounds[i] = round
}

func (a *Assignment) clear(i int) {
	if a.rounds[i] != unassigned {
		a.count--
	}
	a.rounds[i] = unassigned
}
