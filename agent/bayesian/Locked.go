package bayesian

import (
	"sync"

	"github.com/samuelfneumann/bayesq/agent"
)

// Locked wraps an agent.Agent so that it may be used from more than
// one goroutine. Every call holds a single mutex for its duration,
// including the caller's State.Apply during Transition.
type Locked struct {
	mu    sync.Mutex
	agent agent.Agent
}

// NewLocked returns a new Locked wrapping a
func NewLocked(a agent.Agent) *Locked {
	return &Locked{agent: a}
}

// RecommendAction satisfies the agent.Agent interface
func (l *Locked) RecommendAction(s agent.State) (agent.Action, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.agent.RecommendAction(s)
}

// Transition satisfies the agent.Agent interface
func (l *Locked) Transition(s agent.State, a agent.Action) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.agent.Transition(s, a)
}

// Learn satisfies the agent.Agent interface
func (l *Locked) Learn(previous agent.State, a agent.Action,
	current agent.State, r float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.agent.Learn(previous, a, current, r)
}

// Do calls f with the wrapped agent while holding the lock, allowing
// operations outside the agent.Agent interface, such as taking a
// Context, to be serialised with the rest
func (l *Locked) Do(f func(agent.Agent)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.agent)
}
