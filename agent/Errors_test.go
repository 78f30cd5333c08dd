package agent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	incompatible := &IncompatibleActionError{StateID: "A", ActionID: "X"}
	noActions := &NoPossibleActionsError{StateID: "A"}
	notFound := &ActionNotFoundError{StateID: "A", ActionID: "Y"}
	other := errors.New("boom")

	assert.True(t, IsIncompatibleAction(incompatible))
	assert.True(t, IsNoPossibleActions(noActions))
	assert.True(t, IsActionNotFound(notFound))

	assert.False(t, IsIncompatibleAction(noActions))
	assert.False(t, IsNoPossibleActions(notFound))
	assert.False(t, IsActionNotFound(incompatible))

	for _, pred := range []func(error) bool{
		IsIncompatibleAction, IsNoPossibleActions, IsActionNotFound,
	} {
		assert.False(t, pred(other))
		assert.False(t, pred(nil))
	}
}

func TestErrorPredicatesWrapped(t *testing.T) {
	err := fmt.Errorf("step 3: %w", &NoPossibleActionsError{StateID: "T"})
	assert.True(t, IsNoPossibleActions(err))

	var target *NoPossibleActionsError
	if assert.ErrorAs(t, err, &target) {
		assert.Equal(t, "T", target.StateID)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, &IncompatibleActionError{StateID: "A", ActionID: "X"},
		`action "X" is not compatible with state "A"`)
	assert.EqualError(t, &NoPossibleActionsError{StateID: "A"},
		`state "A" has no possible actions`)
	assert.EqualError(t, &ActionNotFoundError{StateID: "A", ActionID: "X"},
		`action "X" not found in state "A"`)
}
