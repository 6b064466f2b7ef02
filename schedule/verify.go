package schedule

import (
	"fmt"

	"github.com/katalvlaran/roundplan/league"
)

// Verify re-checks a total assignment against every invariant:
// completeness within [1, rounds], per-round capacity, forbidden rounds
// (either orientation) and conflict edges. It returns nil or an error
// wrapping ErrInvalidAssignment that names the first violation found.
func Verify(asg *Assignment, forbidden *league.ForbiddenRounds, rounds, capacity int) error {
	if asg == nil {
		return fmt.Errorf("nil assignment: %w", ErrInvalidAssignment)
	}
	if rounds < 1 {
		return fmt.Errorf("rounds=%d: %w", rounds, ErrInvalidAssignment)
	}
	g := asg.Graph()
	load := make([]int, rounds+1)

	var (
		i, r int
		f    league.Fixture
	)
	for i = 0; i < g.Len(); i++ {
		f = g.Fixture(i)
		r = asg.RoundAt(i)
		if r < 1 || r > rounds {
			return fmt.Errorf("fixture %s: round %d outside [1, %d]: %w", f.ID(), r, rounds, ErrInvalidAssignment)
		}
		if forbidden.IsForbidden(f, r) {
			return fmt.Errorf("fixture %s: round %d is forbidden: %w", f.ID(), r, ErrInvalidAssignment)
		}
		load[r]++
		if load[r] > capacity {
			return fmt.Errorf("round %d: more than %d fixtures: %w", r, capacity, ErrInvalidAssignment)
		}
		for _, j := range g.Neighbors(i) {
			if j > i && asg.RoundAt(j) == r {
				return fmt.Errorf("fixtures %s and %s conflict in round %d: %w",
					f.ID(), g.Fixture(j).ID(), r, ErrInvalidAssignment)
			}
		}
	}

	return nil
}
