package bayesian

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextConfig(t *testing.T) {
	c := Config{LearningRate: 0.2, DiscountFactor: 0.3, PrimingThreshold: 4,
		FutureValueFloor: -1}
	ctx := newTestAgent(t, c).Context()

	assert.Equal(t, 0.2, ctx.LearningRate)
	assert.Equal(t, 0.3, ctx.DiscountFactor)
	assert.Equal(t, 4, ctx.PrimingThreshold)
	assert.Equal(t, -1.0, ctx.FutureValueFloor)
	assert.Empty(t, ctx.Table)
}

func TestContextIsCopy(t *testing.T) {
	b := newTestAgent(t, DefaultConfig())
	prev := newMockState("A", "X")
	b.Learn(prev, prev.action("X"), newMockState("B", "Y"), 1)

	ctx := b.Context()
	ctx.Table["A"]["X"].SetCalls(100)
	delete(ctx.Table, "B")

	again := b.Context()
	assert.Equal(t, 1, again.Table["A"]["X"].Calls())
	assert.Equal(t, []string{"A", "B"}, again.States())
}

func TestContextString(t *testing.T) {
	b := newTestAgent(t, Config{LearningRate: 1, PrimingThreshold: 0})
	prev := newMockState("A", "Y", "X")
	b.Learn(prev, prev.action("X"), newMockState("B"), 0.5)

	lines := strings.Split(b.Context().String(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Context |"))
	assert.Equal(t, "\tA/X: calls=1 raw=0.5000 weighted=0.5000", lines[1])
	assert.Equal(t, "\tA/Y: calls=0 raw=0.0000 weighted=0.0000", lines[2])
}
