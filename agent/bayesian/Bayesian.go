// Package bayesian implements a tabular Q-Learning agent which blends
// the value estimate of each action with the mean estimate of its
// sibling actions using a Bayesian average.
//
// Actions with few updates are pulled towards the mean value of their
// state, so that a single lucky (or unlucky) reward does not dominate
// action selection until an action has been tried about as many times
// as the agent's priming threshold. Actions are chosen greedily with
// respect to these weighted values; ties are sorted by action ID and
// broken by a swappable TieBreaker.
package bayesian

import (
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/exp/slices"

	"github.com/samuelfneumann/bayesq/agent"
	"github.com/samuelfneumann/bayesq/qtable"
	"github.com/samuelfneumann/bayesq/stats"
	"github.com/samuelfneumann/bayesq/utils/floatutils"
)

// TieTolerance is the absolute difference under which two weighted
// values are considered equal when choosing the best action
const TieTolerance = 1e-9

// Bayesian implements the Bayesian weighted Q-Learning agent.
//
// A Bayesian agent is not safe for concurrent use; see Locked.
type Bayesian struct {
	table      *qtable.Table
	newStats   stats.Factory
	config     Config
	tieBreaker TieBreaker
	logger     *slog.Logger
}

// New creates a new Bayesian agent from a Config using the default
// statistics record. Ties are broken uniformly at random using seed.
func New(c Config, seed uint64) (*Bayesian, error) {
	return NewWithStats(c, seed, stats.New)
}

// NewWithStats creates a new Bayesian agent which records action
// statistics using records constructed by factory
func NewWithStats(c Config, seed uint64, factory stats.Factory) (*Bayesian,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if factory == nil {
		factory = stats.New
	}

	return &Bayesian{
		table:      qtable.New(),
		newStats:   factory,
		config:     c,
		tieBreaker: NewRandomTieBreaker(seed),
		logger:     slog.Default(),
	}, nil
}

// SetTieBreaker sets the strategy used to choose between equally
// valued actions
func (b *Bayesian) SetTieBreaker(t TieBreaker) {
	if t == nil {
		panic("SetTieBreaker: nil tie-breaker")
	}
	b.tieBreaker = t
}

// SetLogger sets the logger of the agent. A nil logger discards all
// log output.
func (b *Bayesian) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	b.logger = l
}

// Config returns the configuration of the agent
func (b *Bayesian) Config() Config {
	return b.config
}

// RecommendAction returns the action of s with the greatest weighted
// value. If more than one action has this value, the tied actions are
// sorted by ID and the agent's TieBreaker chooses between them.
//
// If s has no possible actions, a *agent.NoPossibleActionsError is
// returned and the agent is not modified. Errors from s.GetAction are
// returned unchanged.
func (b *Bayesian) RecommendAction(s agent.State) (agent.Action, error) {
	stateID := s.ID()
	ids := actionIDs(s.PossibleActions())
	if len(ids) == 0 {
		b.logger.Warn("State has no possible actions", "state", stateID)
		return nil, &agent.NoPossibleActionsError{StateID: stateID}
	}

	b.refresh(stateID, ids)

	bucket := b.table.Bucket(stateID)
	values := make([]float64, len(ids))
	for i, id := range ids {
		values[i] = bucket[id].QValueWeighted()
	}

	max, indices := floatutils.MaxSlice(values, TieTolerance)
	candidates := make([]string, len(indices))
	for i, index := range indices {
		candidates[i] = ids[index]
	}
	if len(candidates) == 0 {
		// Every weighted value is NaN
		candidates = slices.Clone(ids)
	}
	slices.Sort(candidates)

	chosen := candidates[0]
	if len(candidates) > 1 {
		i := b.tieBreaker(len(candidates))
		if i < 0 || i >= len(candidates) {
			panic(fmt.Sprintf("RecommendAction: tie-breaker chose index %d "+
				"from %d candidates", i, len(candidates)))
		}
		chosen = candidates[i]
	}

	b.logger.Debug("Recommending action", "state", stateID, "action", chosen,
		"value", max, "candidates", len(candidates))

	return s.GetAction(chosen)
}

// Transition applies the action a to the state s. If s does not accept
// a, a *agent.IncompatibleActionError is returned without applying a.
// Otherwise the result of s.Apply is returned unchanged.
func (b *Bayesian) Transition(s agent.State, a agent.Action) error {
	if !s.ActionIsCompatible(a) {
		b.logger.Warn("Action is not compatible with state", "state", s.ID(),
			"action", a.ID())
		return &agent.IncompatibleActionError{StateID: s.ID(), ActionID: a.ID()}
	}
	return s.Apply(a)
}

// Learn updates the value of taking action a in state previous, which
// led to state current with reward r.
//
// The weighted value of a in previous is moved towards the target
// r + discount * max(floor, best weighted value in current), after
// which the weighted values of all actions in previous are recomputed.
// If previous is nil, the agent is not modified. A reward which is NaN
// or infinite is ignored, since it would make every later estimate of
// the state non-finite.
func (b *Bayesian) Learn(previous agent.State, a agent.Action,
	current agent.State, r float64) {
	if previous == nil {
		b.logger.Debug("No previous state, nothing to learn")
		return
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		b.logger.Warn("Ignoring non-finite reward", "state", previous.ID(),
			"action", a.ID(), "reward", r)
		return
	}

	prevID, actionID := previous.ID(), a.ID()
	s, ok := b.table.Stats(prevID, actionID)
	if !ok {
		s = b.newStats()
	}

	currentID := current.ID()
	currentIDs := actionIDs(current.PossibleActions())
	b.refresh(currentID, currentIDs)
	future := b.bestFuture(currentID, currentIDs)

	q := floatutils.Bellman(s.QValueWeighted(), b.config.LearningRate, r,
		b.config.DiscountFactor, future)
	s.SetCalls(s.Calls() + 1)
	s.SetQValueRaw(q)
	b.table.Update(prevID, actionID, s)

	b.refresh(prevID, actionIDs(previous.PossibleActions()))

	b.logger.Debug("Learned", "state", prevID, "action", actionID,
		"reward", r, "future", future, "raw", q, "calls", s.Calls())
}

// bestFuture returns the greatest weighted value of the actions in a
// state, or the configured floor if it is greater. Weighted values
// must be current.
func (b *Bayesian) bestFuture(stateID string, ids []string) float64 {
	if len(ids) == 0 {
		return b.config.FutureValueFloor
	}

	bucket := b.table.Bucket(stateID)
	values := make([]float64, 0, len(ids))
	for _, id := range ids {
		values = append(values, bucket[id].QValueWeighted())
	}

	max, _ := floatutils.MaxSlice(values, TieTolerance)
	return math.Max(b.config.FutureValueFloor, max)
}

// actionIDs returns the IDs of actions with duplicates removed,
// keeping the first occurrence of each ID
func actionIDs(actions []agent.Action) []string {
	ids := make([]string, 0, len(actions))
	seen := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		id := a.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
