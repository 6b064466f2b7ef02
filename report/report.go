// Package report renders a solved round assignment for people and tools.
//
//   - WriteText: rounds in ascending order, one "HOME X AWAY" line per fixture.
//   - WriteJSON: the same grouping as a JSON document.
//   - WriteDOT:  the conflict graph in Graphviz DOT, each fixture filled with
//     its round's color, plus a legend cluster mapping rounds to colors.
//
// All writers are deterministic: rounds ascend and fixtures within a round
// keep the conflict graph's order.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/roundplan/league"
	"github.com/katalvlaran/roundplan/schedule"
)

// ErrNilAssignment is returned when a writer receives no assignment.
var ErrNilAssignment = errors.New("report: assignment is nil")

// Round is one round of a rendered schedule.
type Round struct {
	Number   int           `json:"round"`
	Fixtures []FixtureJSON `json:"fixtures"`
}

// FixtureJSON is the JSON form of a fixture.
type FixtureJSON struct {
	Home league.Team `json:"home"`
	Away league.Team `json:"away"`
}

// Document is the JSON report root.
type Document struct {
	Rounds   int     `json:"rounds"`
	Capacity int     `json:"capacity"`
	Schedule []Round `json:"schedule"`
}

// Group returns the non-empty rounds of asg in ascending order.
func Group(asg *schedule.Assignment, rounds int) []Round {
	var out []Round
	for k, fixtures := range asg.ByRound(rounds) {
		if len(fixtures) == 0 {
			continue
		}
		r := Round{Number: k + 1, Fixtures: make([]FixtureJSON, len(fixtures))}
		for i, f := range fixtures {
			r.Fixtures[i] = FixtureJSON{Home: f.Home, Away: f.Away}
		}
		out = append(out, r)
	}

	return out
}

// WriteText prints each non-empty round as
//
//	Round k:
//	HOME X AWAY
//	...
//	<blank line>
func WriteText(w io.Writer, res *schedule.Result) error {
	if res == nil || res.Assignment == nil {
		return ErrNilAssignment
	}
	for _, r := range Group(res.Assignment, res.Rounds) {
		if _, err := fmt.Fprintf(w, "Round %d:\n", r.Number); err != nil {
			return err
		}
		for _, f := range r.Fixtures {
			if _, err := fmt.Fprintf(w, "%s X %s\n", f.Home, f.Away); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON encodes the schedule as an indented Document.
func WriteJSON(w io.Writer, res *schedule.Result) error {
	if res == nil || res.Assignment == nil {
		return ErrNilAssignment
	}
	doc := Document{
		Rounds:   res.Rounds,
		Capacity: res.Capacity,
		Schedule: Group(res.Assignment, res.Rounds),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
