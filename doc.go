// Package roundplan schedules double round-robin leagues into rounds.
//
// Every ordered pair of teams is a fixture. Two fixtures conflict when they
// share a team, or when their home teams are a registered home-conflict pair.
// The scheduler assigns each fixture to one of N rounds so that no round
// holds two conflicting fixtures or more than C fixtures, and no fixture is
// played in a round forbidden for its pair.
//
// Layout:
//
//	core/      thread-safe undirected graph primitives
//	league/    teams, fixtures, home-conflict and forbidden-round tables
//	conflict/  conflict graph over fixtures
//	schedule/  backtracking solver, admissibility check, verification
//	report/    text, JSON and Graphviz DOT renderers
//	config/    YAML league files
//	metrics/   Prometheus solver metrics
//	cmd/roundplan  command line front end
//
// Quick start:
//
//	roster, _ := league.NewRoster("A", "B", "C", "D")
//	g, _ := conflict.Build(roster.Fixtures(), nil)
//	res, err := schedule.Solve(g, nil, schedule.WithRounds(6), schedule.WithCapacity(2))
package roundplan
