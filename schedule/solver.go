package schedule

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roundplan/conflict"
	"github.com/katalvlaran/roundplan/league"
)

const methodSolve = "schedule.Solve"

// Solver runs backtracking searches with fixed Options.
// A Solver holds no search state and may be shared across goroutines.
type Solver struct {
	opts Options
}

// NewSolver applies opts over DefaultOptions.
func NewSolver(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Solver{opts: o}
}

// Options returns a copy of the solver's options.
func (s *Solver) Options() Options { return s.opts }

// Solve is shorthand for NewSolver(opts...).Solve(g, forbidden).
func Solve(g *conflict.Graph, forbidden *league.ForbiddenRounds, opts ...Option) (*Result, error) {
	return NewSolver(opts...).Solve(g, forbidden)
}

// engine holds the live state of one search.
// Only commit and undo mutate asg and load.
type engine struct {
	g         *conflict.Graph
	forbidden *league.ForbiddenRounds
	rounds    int
	capacity  int
	opts      Options

	asg   *Assignment
	load  *RoundLoad
	stats Stats
}

// Solve assigns every fixture of g to a round or proves that none exists.
// forbidden may be nil.
//
// Errors:
//   - ErrConfiguration: g is nil or empty, Rounds ≤ 0, Capacity < 0.
//   - league.ErrMalformedConstraint: forbidden names a pair without a
//     fixture in g, or a round above Rounds.
//   - ErrInfeasible: exhaustive search found no total assignment. The
//     returned error is an *InfeasibleError carrying the search Stats.
//
// No partial assignment is returned on error.
func (s *Solver) Solve(g *conflict.Graph, forbidden *league.ForbiddenRounds) (*Result, error) {
	if err := s.validate(g, forbidden); err != nil {
		return nil, err
	}

	e := &engine{
		g:         g,
		forbidden: forbidden,
		rounds:    s.opts.Rounds,
		capacity:  s.opts.Capacity,
		opts:      s.opts,
		asg:       NewAssignment(g),
		load:      NewRoundLoad(s.opts.Rounds),
	}
	log := s.opts.Logger.With("fixtures", g.Len(), "rounds", e.rounds, "capacity", e.capacity)
	log.Debug("search started", "conflicts", g.EdgeCount(), "forbidden_pairs", forbidden.Len())

	start := time.Now()
	ok := e.search(0)
	e.stats.Duration = time.Since(start)

	if !ok {
		log.Info("search exhausted",
			"trials", e.stats.Trials, "backtracks", e.stats.Backtracks, "duration", e.stats.Duration)

		return nil, &InfeasibleError{Fixtures: g.Len(), Rounds: e.rounds, Capacity: e.capacity, Stats: e.stats}
	}
	log.Info("search succeeded",
		"trials", e.stats.Trials, "backtracks", e.stats.Backtracks, "duration", e.stats.Duration)

	return &Result{
		Assignment: e.asg,
		Rounds:     e.rounds,
		Capacity:   e.capacity,
		Stats:      e.stats,
	}, nil
}

func (s *Solver) validate(g *conflict.Graph, forbidden *league.ForbiddenRounds) error {
	if g == nil || g.Len() == 0 {
		return fmt.Errorf("%s: empty conflict graph: %w", methodSolve, ErrConfiguration)
	}
	if s.opts.Rounds <= 0 {
		return fmt.Errorf("%s: rounds=%d: %w", methodSolve, s.opts.Rounds, ErrConfiguration)
	}
	if s.opts.Capacity < 0 {
		return fmt.Errorf("%s: capacity=%d: %w", methodSolve, s.opts.Capacity, ErrConfiguration)
	}

	var (
		f      league.Fixture
		ok     bool
		rounds []int
	)
	for _, p := range forbidden.Pairs() {
		f = league.Fixture{Home: p.A, Away: p.B}
		if _, ok = g.Index(f); !ok {
			_, ok = g.Index(f.Reverse())
		}
		if !ok {
			return fmt.Errorf("%s: forbidden rounds %s/%s: no such fixture: %w",
				methodSolve, p.A, p.B, league.ErrMalformedConstraint)
		}
		rounds = forbidden.Rounds(f)
		if len(rounds) > 0 && rounds[len(rounds)-1] > s.opts.Rounds {
			return fmt.Errorf("%s: forbidden rounds %s/%s: round %d > %d: %w",
				methodSolve, p.A, p.B, rounds[len(rounds)-1], s.opts.Rounds, league.ErrMalformedConstraint)
		}
	}

	return nil
}

// search places fixture i and everything after it. Recursion depth is
// bounded by the fixture count.
func (e *engine) search(i int) bool {
	if i == e.g.Len() {
		return true
	}
	if i+1 > e.stats.MaxDepth {
		e.stats.MaxDepth = i + 1
	}

	var round int
	for round = 1; round <= e.rounds; round++ {
		e.stats.Trials++
		if !Admissible(e.g, i, round, e.asg, e.load, e.forbidden, e.capacity) {
			continue
		}
		e.commit(i, round)
		if e.search(i + 1) {
			return true
		}
		e.undo(i, round)
	}

	return false
}

func (e *engine) commit(i, round int) {
	e.asg.set(i, round)
	e.load.Inc(round)
	e.stats.Commits++
	if e.opts.OnCommit != nil {
		e.opts.OnCommit(e.g.Fixture(i), round)
	}
}

func (e *engine) undo(i, round int) {
	e.asg.clear(i)
	e.load.Dec(round)
	e.stats.Backtracks++
	if e.opts.OnUndo != nil {
		e.opts.OnUndo(e.g.Fixture(i), round)
	}
}
