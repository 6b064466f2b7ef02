package schedule

// RoundLoad tracks how many fixtures are committed to each round.
// Only the solver's commit (Inc) and undo (Dec) steps mutate it, so
// Count(r) always equals the number of fixtures assigned to r.
type RoundLoad struct {
	counts []int // counts[r-1] for round r
}

// NewRoundLoad returns zeroed counters for rounds 1..n.
func NewRoundLoad(n int) *RoundLoad {
	if n < 0 {
		n = 0
	}

	return &RoundLoad{counts: make([]int, n)}
}

// Rounds returns N.
func (l *RoundLoad) Rounds() int { return len(l.counts) }

// Count returns the load of round r; out-of-range rounds report 0.
func (l *RoundLoad) Count(r int) int {
	if r < 1 || r > len(l.counts) {
		return 0
	}

	return l.counts[r-1]
}

// Inc records a commit to round r.
func (l *RoundLoad) Inc(r int) { l.counts[r-1]++ }

// Dec records an undo from round r.
func (l *RoundLoad) Dec(r int) { l.counts[r-1]-- }
