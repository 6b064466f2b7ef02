package league

import "fmt"

// Roster is an ordered, duplicate-free list of teams.
type Roster struct {
	teams []Team
	index map[Team]int
}

// NewRoster validates teams and returns a Roster preserving their order.
//
// Errors:
//   - ErrTooFewTeams, ErrEmptyTeam, ErrDuplicateTeam.
func NewRoster(teams ...Team) (*Roster, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("NewRoster: %d teams: %w", len(teams), ErrTooFewTeams)
	}
	r := &Roster{
		teams: make([]Team, 0, len(teams)),
		index: make(map[Team]int, len(teams)),
	}
	for _, t := range teams {
		if t == "" {
			return nil, ErrEmptyTeam
		}
		if _, dup := r.index[t]; dup {
			return nil, fmt.Errorf("NewRoster: %s: %w", t, ErrDuplicateTeam)
		}
		r.index[t] = len(r.teams)
		r.teams = append(r.teams, t)
	}

	return r, nil
}

// Teams returns a copy of the teams in roster order.
func (r *Roster) Teams() []Team {
	out := make([]Team, len(r.teams))
	copy(out, r.teams)

	return out
}

// Len returns the number of teams.
func (r *Roster) Len() int { return len(r.teams) }

// Has reports whether t is on the roster.
func (r *Roster) Has(t Team) bool {
	_, ok := r.index[t]

	return ok
}

// Fixtures returns every ordered pair of distinct teams.
//
// Order: every combination (teams[i], teams[j]) with i<j in roster order,
// followed by the reverse of each in the same order. For T teams this yields
// T·(T−1) fixtures and the sequence is the solver's fixed search order.
func (r *Roster) Fixtures() []Fixture {
	n := len(r.teams)
	half := n * (n - 1) / 2
	out := make([]Fixture, 0, 2*half)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, Fixture{Home: r.teams[i], Away: r.teams[j]})
		}
	}
	for i = 0; i < half; i++ {
		out = append(out, out[i].Reverse())
	}

	return out
}
