// Package league defines teams, fixtures and the two constraint tables that
// shape a round-robin schedule.
//
// The two tables are distinct types because they constrain different things:
//
//   - ForbiddenRounds is keyed by an unordered PairKey, so a fixture and its
//     reverse share one entry.
//   - HomeConflicts relates two teams by the home slot only; it says nothing
//     about which fixtures the teams appear in as visitors.
//
// Errors:
//
//	ErrSelfFixture          - a fixture names the same team on both sides.
//	ErrEmptyTeam            - a team identifier is empty.
//	ErrDuplicateTeam        - the roster lists a team twice.
//	ErrTooFewTeams          - the roster has fewer than two teams.
//	ErrMalformedConstraint  - a table entry references a team or fixture
//	                          absent from the roster, or an out-of-range round.
package league

import (
	"errors"
	"fmt"
)

// Sentinel errors for league construction and constraint validation.
var (
	ErrSelfFixture         = errors.New("league: fixture home and away are the same team")
	ErrEmptyTeam           = errors.New("league: team identifier is empty")
	ErrDuplicateTeam       = errors.New("league: duplicate team in roster")
	ErrTooFewTeams         = errors.New("league: roster needs at least two teams")
	ErrMalformedConstraint = errors.New("league: malformed constraint")
)

// Team is an opaque team identifier.
type Team string

// Fixture is an ordered pairing: Home hosts Away.
// A fixture and its reverse are distinct fixtures.
type Fixture struct {
	Home Team
	Away Team
}

// NewFixture returns the fixture home vs away, rejecting empty or equal teams.
func NewFixture(home, away Team) (Fixture, error) {
	if home == "" || away == "" {
		return Fixture{}, ErrEmptyTeam
	}
	if home == away {
		return Fixture{}, fmt.Errorf("NewFixture(%s, %s): %w", home, away, ErrSelfFixture)
	}

	return Fixture{Home: home, Away: away}, nil
}

// Reverse returns the fixture with home and away swapped.
func (f Fixture) Reverse() Fixture { return Fixture{Home: f.Away, Away: f.Home} }

// ID returns "HOME-AWAY" for messages and logs. It is not unique when team
// names contain '-'; use the Fixture value itself as a map key.
func (f Fixture) ID() string { return string(f.Home) + "-" + string(f.Away) }

// String renders the fixture as "HOME X AWAY".
func (f Fixture) String() string { return string(f.Home) + " X " + string(f.Away) }

// Key returns the unordered team pair of f.
func (f Fixture) Key() PairKey { return NewPairKey(f.Home, f.Away) }

// Involves reports whether t plays in f, home or away.
func (f Fixture) Involves(t Team) bool { return f.Home == t || f.Away == t }

// SharesTeam reports whether f and o have at least one team in common.
func (f Fixture) SharesTeam(o Fixture) bool { return f.Involves(o.Home) || f.Involves(o.Away) }

// PairKey is an unordered pair of teams, normalized so that A <= B.
type PairKey struct {
	A Team
	B Team
}

// NewPairKey returns the normalized unordered pair {a, b}.
func NewPairKey(a, b Team) PairKey {
	if b < a {
		a, b = b, a
	}

	return PairKey{A: a, B: b}
}
