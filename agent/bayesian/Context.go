package bayesian

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/samuelfneumann/bayesq/stats"
)

// Context is a read-only copy of an agent's configuration and learned
// statistics, for inspection or logging
type Context struct {
	LearningRate     float64
	DiscountFactor   float64
	PrimingThreshold int
	FutureValueFloor float64

	// Table maps state IDs to action IDs to a copy of the statistics
	// of that action
	Table map[string]map[string]stats.ActionStatter
}

// Context returns a copy of the agent's configuration and of every
// statistic it has recorded. Changes to the Context do not affect the
// agent.
func (b *Bayesian) Context() Context {
	return Context{
		LearningRate:     b.config.LearningRate,
		DiscountFactor:   b.config.DiscountFactor,
		PrimingThreshold: b.config.PrimingThreshold,
		FutureValueFloor: b.config.FutureValueFloor,
		Table:            b.table.Snapshot(),
	}
}

// States returns the IDs of the states in the Context, sorted
func (c Context) States() []string {
	ids := maps.Keys(c.Table)
	slices.Sort(ids)
	return ids
}

func (c Context) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Context | Learning Rate: %v  |  Discount: %v  |  "+
		"Priming Threshold: %v  |  Future Floor: %v", c.LearningRate,
		c.DiscountFactor, c.PrimingThreshold, c.FutureValueFloor)

	for _, stateID := range c.States() {
		bucket := c.Table[stateID]
		actionIDs := maps.Keys(bucket)
		slices.Sort(actionIDs)

		for _, actionID := range actionIDs {
			s := bucket[actionID]
			fmt.Fprintf(&b, "\n\t%s/%s: calls=%d raw=%.4f weighted=%.4f",
				stateID, actionID, s.Calls(), s.QValueRaw(), s.QValueWeighted())
		}
	}
	return b.String()
}
