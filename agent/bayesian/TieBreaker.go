package bayesian

import (
	"golang.org/x/exp/rand"
)

// TieBreaker chooses between n > 1 equally valued actions by returning
// an index in [0, n). Candidates are always presented sorted by action
// ID, so a deterministic TieBreaker makes action selection
// deterministic.
type TieBreaker func(n int) int

// NewRandomTieBreaker returns a TieBreaker which chooses uniformly at
// random, seeded by seed
func NewRandomTieBreaker(seed uint64) TieBreaker {
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int {
		return rng.Intn(n)
	}
}

// FixedTieBreaker returns a TieBreaker which always chooses index i,
// or the last candidate if there are not more than i candidates
func FixedTieBreaker(i int) TieBreaker {
	return func(n int) int {
		if i >= n {
			return n - 1
		}
		return i
	}
}
