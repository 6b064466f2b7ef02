package config

// Default returns the seven-team league the scheduler ships with: a double
// round-robin over 14 rounds of at most 3 fixtures.
func Default() *LeagueConfig {
	return &LeagueConfig{
		Name:     "Default league",
		Teams:    []string{"DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"},
		Rounds:   14,
		Capacity: 3,
		HomeConflicts: []HomeConflict{
			{Teams: []string{"TFC", "OFC"}},
			{Teams: []string{"AFC", "FFC"}},
		},
		ForbiddenRounds: []ForbiddenEntry{
			{Home: "DFC", Away: "CFC", Rounds: []int{1, 14}},
			{Home: "LFC", Away: "FFC", Rounds: []int{7, 13}},
			{Home: "OFC", Away: "LFC", Rounds: []int{10, 11}},
			{Home: "AFC", Away: "FFC", Rounds: []int{12, 13}},
			{Home: "CFC", Away: "TFC", Rounds: []int{2, 3}},
		},
	}
}
