// Package agent defines the capabilities of the states and actions a
// tabular agent learns over, and the agent interface itself
package agent

// Action represents an action that can be applied to a State
type Action interface {
	// ID returns an identifier for the action. Implementors should
	// ensure the identifier is unique among the actions of a state and
	// stable for the lifetime of the agent. Actions which share an ID
	// share learned statistics.
	ID() string
}

// State represents the disposition of the caller's model at some point
type State interface {
	// ID returns an identifier for the state. Implementors should
	// ensure the identifier is unique and stable for the lifetime of
	// the agent. States which share an ID share learned statistics.
	ID() string

	// PossibleActions returns the actions that are valid from the
	// state. Order is irrelevant.
	PossibleActions() []Action

	// ActionIsCompatible returns whether the action may be applied to
	// the state
	ActionIsCompatible(Action) bool

	// Apply executes the action. This is the only side-effecting
	// operation in the learning loop and is owned by the caller.
	Apply(Action) error

	// GetAction resolves an action ID to an action of the state.
	// Implementations should return an *ActionNotFoundError if the
	// state has no action with that ID.
	GetAction(id string) (Action, error)
}

// Agent determines the implementation details of a tabular learning
// agent.
//
// An Agent is driven by an external control loop which repeatedly
// asks the Agent to recommend an action for the current state, to
// transition the state using that action, and then to learn from the
// reward observed for the transition.
type Agent interface {
	// RecommendAction recommends an action for the state given what
	// the agent has learned so far
	RecommendAction(State) (Action, error)

	// Transition applies the action to the state, returning an error
	// if the action is not compatible with the state
	Transition(State, Action) error

	// Learn updates the agent's estimates for taking action in
	// previous, which led to current and produced reward. A nil
	// previous state denotes the first step of the loop, for which
	// there is nothing to learn.
	Learn(previous State, action Action, current State, reward float64)
}
