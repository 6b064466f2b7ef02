package league

import (
	"fmt"
	"sort"
)

// ForbiddenRounds maps an unordered team pair to the rounds in which the
// fixture between them may not be played, whichever team hosts.
//
// Entries added under both orientations of a pair are merged.
type ForbiddenRounds struct {
	entries map[PairKey]map[int]struct{}
}

// NewForbiddenRounds returns an empty table.
func NewForbiddenRounds() *ForbiddenRounds {
	return &ForbiddenRounds{entries: make(map[PairKey]map[int]struct{})}
}

// Add forbids rounds for the pair of f. Rounds must be >= 1.
func (t *ForbiddenRounds) Add(f Fixture, rounds ...int) error {
	if f.Home == f.Away {
		return fmt.Errorf("ForbiddenRounds.Add(%s): %w", f.ID(), ErrSelfFixture)
	}
	for _, r := range rounds {
		if r < 1 {
			return fmt.Errorf("ForbiddenRounds.Add(%s): round %d: %w", f.ID(), r, ErrMalformedConstraint)
		}
	}
	k := f.Key()
	set, ok := t.entries[k]
	if !ok {
		set = make(map[int]struct{}, len(rounds))
		t.entries[k] = set
	}
	for _, r := range rounds {
		set[r] = struct{}{}
	}

	return nil
}

// IsForbidden reports whether round is forbidden for f or its reverse.
// A nil table forbids nothing.
func (t *ForbiddenRounds) IsForbidden(f Fixture, round int) bool {
	if t == nil {
		return false
	}
	set, ok := t.entries[f.Key()]
	if !ok {
		return false
	}
	_, hit := set[round]

	return hit
}

// Rounds returns the forbidden rounds for f's pair in ascending order.
func (t *ForbiddenRounds) Rounds(f Fixture) []int {
	if t == nil {
		return nil
	}
	set := t.entries[f.Key()]
	out := make([]int, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Ints(out)

	return out
}

// Len returns the number of pairs with at least one entry.
func (t *ForbiddenRounds) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Validate checks that every pair names roster teams and every round lies in [1, rounds].
func (t *ForbiddenRounds) Validate(r *Roster, rounds int) error {
	if t == nil {
		return nil
	}
	for _, k := range t.Pairs() {
		if !r.Has(k.A) || !r.Has(k.B) {
			return fmt.Errorf("forbidden rounds %s/%s: unknown team: %w", k.A, k.B, ErrMalformedConstraint)
		}
		for round := range t.entries[k] {
			if round > rounds {
				return fmt.Errorf("forbidden rounds %s/%s: round %d > %d: %w", k.A, k.B, round, rounds, ErrMalformedConstraint)
			}
		}
	}

	return nil
}

// Pairs returns the pairs with at least one entry, sorted by (A, B).
func (t *ForbiddenRounds) Pairs() []PairKey {
	if t == nil {
		return nil
	}
	out := make([]PairKey, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sortPairs(out)

	return out
}

// HomeConflicts is a set of team pairs that must not both host in the same round.
// The relation constrains the home slot only.
type HomeConflicts struct {
	pairs map[PairKey]struct{}
}

// NewHomeConflicts returns an empty table.
func NewHomeConflicts() *HomeConflicts {
	return &HomeConflicts{pairs: make(map[PairKey]struct{})}
}

// Add records that a and b must not host in the same round.
func (h *HomeConflicts) Add(a, b Team) error {
	if a == "" || b == "" {
		return ErrEmptyTeam
	}
	if a == b {
		return fmt.Errorf("HomeConflicts.Add(%s, %s): %w", a, b, ErrMalformedConstraint)
	}
	h.pairs[NewPairKey(a, b)] = struct{}{}

	return nil
}

// Conflicts reports whether hosts a and b are a registered pair, in either order.
// A nil table has no pairs.
func (h *HomeConflicts) Conflicts(a, b Team) bool {
	if h == nil {
		return false
	}
	_, ok := h.pairs[NewPairKey(a, b)]

	return ok
}

// Pairs returns the registered pairs sorted by (A, B).
func (h *HomeConflicts) Pairs() []PairKey {
	if h == nil {
		return nil
	}
	out := make([]PairKey, 0, len(h.pairs))
	for k := range h.pairs {
		out = append(out, k)
	}
	sortPairs(out)

	return out
}

// Len returns the number of pairs.
func (h *HomeConflicts) Len() int {
	if h == nil {
		return 0
	}

	return len(h.pairs)
}

// Validate checks that every pair names roster teams.
func (h *HomeConflicts) Validate(r *Roster) error {
	for _, k := range h.Pairs() {
		if !r.Has(k.A) || !r.Has(k.B) {
			return fmt.Errorf("home conflict %s/%s: unknown team: %w", k.A, k.B, ErrMalformedConstraint)
		}
	}

	return nil
}

func sortPairs(ps []PairKey) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].A != ps[j].A {
			return ps[i].A < ps[j].A
		}

		return ps[i].B < ps[j].B
	})
}
