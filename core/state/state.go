// Package state defines the invoker lifecycle state machine.
package state

import "fmt"

// InvokerState represents the lifecycle state of an invoker.
type InvokerState int

const (
	// StateUnconfigured is the initial state before any slot is set.
	StateUnconfigured InvokerState = iota
	// StateConfigured indicates at least one slot assignment has been made.
	StateConfigured
	// StateTriggering indicates a trigger cycle is in progress.
	StateTriggering
	// StateTriggered indicates a trigger cycle has completed.
	StateTriggered
)

// String returns the string representation of the state.
func (s InvokerState) String() string {
	switch s {
	case StateUnconfigured:
		return "Unconfigured"
	case StateConfigured:
		return "Configured"
	case StateTriggering:
		return "Triggering"
	case StateTriggered:
		return "Triggered"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// validTransitions defines the allowed state transitions.
// Key is the current state, value is a list of valid target states.
// An invoker with no slots may be triggered directly, and a triggered
// invoker may be reconfigured or triggered again.
var validTransitions = map[InvokerState][]InvokerState{
	StateUnconfigured: {StateConfigured, StateTriggering},
	StateConfigured:   {StateConfigured, StateTriggering},
	StateTriggering:   {StateTriggered},
	StateTriggered:    {StateConfigured, StateTriggering},
}

// CanTransitionTo checks if transitioning from the current state to the target state is valid.
func (s InvokerState) CanTransitionTo(target InvokerState) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// ValidTransitions returns the list of valid target states from the current state.
func (s InvokerState) ValidTransitions() []InvokerState {
	return validTransitions[s]
}

// IsTriggering returns true while a trigger cycle is running.
func (s InvokerState) IsTriggering() bool {
	return s == StateTriggering
}

// CanConfigure returns true if slots may be assigned in this state.
func (s InvokerState) CanConfigure() bool {
	return s.CanTransitionTo(StateConfigured)
}

// TransitionError represents an invalid state transition attempt.
type TransitionError struct {
	From   InvokerState
	To     InvokerState
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid state transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// NewTransitionError creates a new TransitionError.
func NewTransitionError(from, to InvokerState, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
