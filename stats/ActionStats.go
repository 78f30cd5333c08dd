// Package stats implements the statistics recorded for each action that
// has been applied to some state
package stats

import "fmt"

// ActionStatter represents the statistics that can be associated with
// an action taken in some state.
//
// Implementations must be usable as an all-zero record straight from
// their Factory and must return an independent copy from Clone.
type ActionStatter interface {
	// Calls returns the number of learning updates applied to the action
	Calls() int

	// SetCalls sets the number of learning updates applied to the action
	SetCalls(n int)

	// QValueRaw returns the unweighted Bellman estimate
	QValueRaw() float64

	// SetQValueRaw sets the unweighted Bellman estimate
	SetQValueRaw(q float64)

	// QValueWeighted returns the Bayesian weighted estimate used for
	// decision making
	QValueWeighted() float64

	// SetQValueWeighted sets the Bayesian weighted estimate
	SetQValueWeighted(q float64)

	// Clone returns a copy of the statistics
	Clone() ActionStatter
}

// Factory constructs all-zero statistics records
type Factory func() ActionStatter

// Stats contains statistics about an action that has been applied to
// some state
type Stats struct {
	// CallCount is the number of learning updates applied to the action
	CallCount int

	// QRaw is the raw q-value associated with the action
	QRaw float64

	// QWeighted is the q-value of the action after being weighted
	// according to the agent's weighting rules
	QWeighted float64
}

// New returns a new, all-zero Stats as an ActionStatter. New is a
// Factory.
func New() ActionStatter {
	return &Stats{}
}

// Calls returns the number of times the action has been learned from
func (s *Stats) Calls() int {
	return s.CallCount
}

// SetCalls sets the number of times the action has been learned from
func (s *Stats) SetCalls(n int) {
	s.CallCount = n
}

// QValueRaw returns the raw q-value
func (s *Stats) QValueRaw() float64 {
	return s.QRaw
}

// SetQValueRaw sets the raw q-value
func (s *Stats) SetQValueRaw(q float64) {
	s.QRaw = q
}

// QValueWeighted returns the weighted q-value
func (s *Stats) QValueWeighted() float64 {
	return s.QWeighted
}

// SetQValueWeighted sets the weighted q-value
func (s *Stats) SetQValueWeighted(q float64) {
	s.QWeighted = q
}

// Clone returns a copy of the Stats
func (s *Stats) Clone() ActionStatter {
	clone := *s
	return &clone
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats | Calls: %d  |  Raw: %.4f  |  Weighted: %.4f",
		s.CallCount, s.QRaw, s.QWeighted)
}
