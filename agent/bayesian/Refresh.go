package bayesian

import (
	"github.com/samuelfneumann/bayesq/utils/floatutils"
)

// refresh recomputes the weighted values of the actions with the given
// IDs in a state.
//
// Actions with no statistics are given all-zero statistics. The mean
// raw value is taken over the actions which have been learned from at
// least once; entries that exist but have never been updated do not
// count, so creating them cannot move the mean. Each action's weighted
// value becomes the Bayesian average of that mean and its own raw
// value, weighted by the priming threshold and its number of calls
// respectively. Calling refresh again without an intervening update
// reproduces the same weighted values exactly.
func (b *Bayesian) refresh(stateID string, ids []string) {
	if len(ids) == 0 {
		return
	}

	bucket := b.table.Bucket(stateID)
	raw := make([]float64, 0, len(ids))
	for _, id := range ids {
		s, ok := bucket[id]
		if !ok {
			bucket[id] = b.newStats()
			continue
		}
		if s.Calls() > 0 {
			raw = append(raw, s.QValueRaw())
		}
	}

	mean := floatutils.SafeDivide(floatutils.Sum(raw), float64(len(raw)))
	c := float64(b.config.PrimingThreshold)
	for _, id := range ids {
		s := bucket[id]
		s.SetQValueWeighted(floatutils.BayesianAverage(c, float64(s.Calls()),
			mean, s.QValueRaw()))
		bucket[id] = s
	}
}
