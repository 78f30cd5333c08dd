package bayesian

import (
	"github.com/samuelfneumann/bayesq/agent"
)

type mockAction struct {
	id string
}

func (a mockAction) ID() string {
	return a.id
}

// mockState is a hand-written agent.State which records how it is
// used. Nil functions fail loudly when called.
type mockState struct {
	id      string
	actions []agent.Action

	compatible func(agent.Action) bool
	apply      func(agent.Action) error

	applyCalls     int
	getActionCalls int
}

func newMockState(id string, actionIDs ...string) *mockState {
	actions := make([]agent.Action, len(actionIDs))
	for i, actionID := range actionIDs {
		actions[i] = mockAction{actionID}
	}
	return &mockState{id: id, actions: actions}
}

func (s *mockState) ID() string {
	return s.id
}

func (s *mockState) PossibleActions() []agent.Action {
	return s.actions
}

func (s *mockState) ActionIsCompatible(a agent.Action) bool {
	if s.compatible == nil {
		panic("mockState: unexpected call to ActionIsCompatible")
	}
	return s.compatible(a)
}

func (s *mockState) Apply(a agent.Action) error {
	s.applyCalls++
	if s.apply == nil {
		panic("mockState: unexpected call to Apply")
	}
	return s.apply(a)
}

func (s *mockState) GetAction(id string) (agent.Action, error) {
	s.getActionCalls++
	for _, a := range s.actions {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, &agent.ActionNotFoundError{StateID: s.id, ActionID: id}
}

func (s *mockState) action(id string) agent.Action {
	a, err := s.GetAction(id)
	if err != nil {
		panic(err)
	}
	s.getActionCalls--
	return a
}
