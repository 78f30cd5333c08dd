package bayesian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTieBreaker(t *testing.T) {
	tb := FixedTieBreaker(2)
	assert.Equal(t, 2, tb(5))
	assert.Equal(t, 2, tb(3))
	assert.Equal(t, 1, tb(2))
}

func TestRandomTieBreakerInRange(t *testing.T) {
	tb := NewRandomTieBreaker(42)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		index := tb(4)
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, 4)
		seen[index] = true
	}
	assert.Len(t, seen, 4)
}

func TestRandomTieBreakerSeeded(t *testing.T) {
	a, b := NewRandomTieBreaker(3), NewRandomTieBreaker(3)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a(10), b(10))
	}
}
