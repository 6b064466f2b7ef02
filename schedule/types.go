// Package schedule assigns every fixture of a conflict graph to one of N
// rounds by exhaustive chronological backtracking.
//
// What:
//
//   - Solve walks the graph's fixture order, trying rounds 1..N in ascending
//     order for each fixture. A trial is committed only when Admissible
//     accepts it; a dead end undoes the most recent commitment and moves on
//     to that fixture's next round.
//   - The first complete assignment wins. No secondary criterion is applied.
//   - Exhausting every round of the first fixture proves the instance
//     infeasible and returns ErrInfeasible.
//
// Admissibility, checked in this order with short-circuit:
//
//  1. the round is not forbidden for the fixture or its reverse;
//  2. the round holds fewer than Capacity fixtures;
//  3. no already-assigned conflict neighbor sits in the round.
//
// Determinism: identical graph, table, rounds and capacity always yield the
// same assignment or the same ErrInfeasible.
//
// Complexity:
//
//   - Time:   exponential in the fixture count F in the worst case.
//   - Memory: O(F + N) search state plus recursion depth ≤ F.
//
// Concurrency: a single solve is sequential and owns its Assignment and
// RoundLoad. Independent solves may run concurrently on a shared graph.
//
// Errors:
//
//   - ErrInfeasible              no total assignment exists (expected outcome).
//   - ErrConfiguration           nil or empty graph, Rounds ≤ 0 or Capacity < 0.
//     An empty fixture list never reaches Solve: conflict.Build rejects
//     it as conflict.ErrNoFixtures.
//   - league.ErrMalformedConstraint
//     a forbidden-round entry names a pair with no fixture in the graph
//     or a round above Rounds.
//   - ErrInvalidAssignment       returned by Verify only.
package schedule

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/roundplan/league"
)

// Defaults match the seven-team double round-robin the package was built for.
const (
	DefaultRounds   = 14
	DefaultCapacity = 3
)

var (
	// ErrInfeasible reports that exhaustive search proved no valid total
	// assignment exists. Relax the tables or increase Rounds/Capacity.
	ErrInfeasible = errors.New("schedule: no feasible round assignment")

	// ErrConfiguration reports invalid solver parameters, rejected before search.
	ErrConfiguration = errors.New("schedule: invalid configuration")

	// ErrInvalidAssignment reports an assignment that breaks an invariant.
	ErrInvalidAssignment = errors.New("schedule: invalid assignment")
)

// Option configures a solve.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Rounds is N, the number of rounds. Must be > 0.
	Rounds int

	// Capacity is C, the maximum fixtures per round. Must be >= 0; zero
	// makes every non-empty instance infeasible.
	Capacity int

	// Logger receives solve lifecycle records. Defaults to a discard logger.
	Logger *slog.Logger

	// OnCommit, if non-nil, observes every committed trial.
	OnCommit func(f league.Fixture, round int)

	// OnUndo, if non-nil, observes every undone commitment.
	OnUndo func(f league.Fixture, round int)
}

// DefaultOptions returns Options with DefaultRounds, DefaultCapacity,
// a discard logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Rounds:   DefaultRounds,
		Capacity: DefaultCapacity,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRounds sets the number of rounds N.
func WithRounds(n int) Option {
	return func(o *Options) { o.Rounds = n }
}

// WithCapacity sets the per-round capacity C.
func WithCapacity(c int) Option {
	return func(o *Options) { o.Capacity = c }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCommit installs an observer called after each commit.
func WithOnCommit(fn func(f league.Fixture, round int)) Option {
	return func(o *Options) { o.OnCommit = fn }
}

// WithOnUndo installs an observer called after each undo.
func WithOnUndo(fn func(f league.Fixture, round int)) Option {
	return func(o *Options) { o.OnUndo = fn }
}

// Stats are search diagnostics.
type Stats struct {
	// Trials counts (fixture, round) candidates evaluated by Admissible.
	Trials int

	// Commits counts admissible trials that were committed.
	Commits int

	// Backtracks counts commitments that were undone.
	Backtracks int

	// MaxDepth is the deepest fixture index reached plus one.
	MaxDepth int

	// Duration is the wall-clock time of the search.
	Duration time.Duration
}

// Result is a successful solve.
type Result struct {
	// Assignment is total: every fixture has a round in [1, Rounds].
	Assignment *Assignment

	// Rounds and Capacity echo the parameters used.
	Rounds   int
	Capacity int

	Stats Stats
}

// InfeasibleError is the error Solve returns when the search is exhausted.
// It matches ErrInfeasible under errors.Is and carries the search Stats.
type InfeasibleError struct {
	Fixtures int
	Rounds   int
	Capacity int
	Stats    Stats
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%s: %d fixtures, %d rounds, capacity %d: %v",
		methodSolve, e.Fixtures, e.Rounds, e.Capacity, ErrInfeasible)
}

// Unwrap returns ErrInfeasible.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }
