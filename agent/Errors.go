package agent

import (
	"errors"
	"fmt"
)

// IncompatibleActionError reports that a state rejected an action
type IncompatibleActionError struct {
	StateID  string
	ActionID string
}

// Error satisfies the error interface
func (e *IncompatibleActionError) Error() string {
	return fmt.Sprintf("action %q is not compatible with state %q",
		e.ActionID, e.StateID)
}

// NoPossibleActionsError reports that a state has no possible actions,
// either because it is terminal or because the caller's state graph is
// malformed
type NoPossibleActionsError struct {
	StateID string
}

// Error satisfies the error interface
func (e *NoPossibleActionsError) Error() string {
	return fmt.Sprintf("state %q has no possible actions", e.StateID)
}

// ActionNotFoundError reports that a state has no action with some ID.
// States should return it from GetAction.
type ActionNotFoundError struct {
	StateID  string
	ActionID string
}

// Error satisfies the error interface
func (e *ActionNotFoundError) Error() string {
	return fmt.Sprintf("action %q not found in state %q", e.ActionID,
		e.StateID)
}

// IsIncompatibleAction returns whether or not an error reports that an
// action was not compatible with a state
func IsIncompatibleAction(err error) bool {
	var target *IncompatibleActionError
	return errors.As(err, &target)
}

// IsNoPossibleActions returns whether or not an error reports that a
// state has no possible actions
func IsNoPossibleActions(err error) bool {
	var target *NoPossibleActionsError
	return errors.As(err, &target)
}

// IsActionNotFound returns whether or not an error reports that an
// action could not be resolved from its ID
func IsActionNotFound(err error) bool {
	var target *ActionNotFoundError
	return errors.As(err, &target)
}
