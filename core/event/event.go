// Package event defines the events an invoker publishes while it works.
// Events describe what happened and are consumed by observers; they never
// influence the trigger cycle itself.
package event

import "invoker-go/core/state"

// Event is the base interface for all events.
type Event interface {
	// EventName returns the name of the event for logging/debugging
	EventName() string
}

// InvokerEvent is an event that originates from a specific invoker.
type InvokerEvent interface {
	Event
	// InvokerID returns the source invoker ID
	InvokerID() string
}

// baseInvokerEvent provides common implementation for invoker events.
type baseInvokerEvent struct {
	invokerID string
}

func (e *baseInvokerEvent) InvokerID() string {
	return e.invokerID
}

// StateChanged is published when an invoker's lifecycle state changes.
type StateChanged struct {
	baseInvokerEvent
	OldState state.InvokerState
	NewState state.InvokerState
}

func NewStateChanged(invokerID string, oldState, newState state.InvokerState) *StateChanged {
	return &StateChanged{
		baseInvokerEvent: baseInvokerEvent{invokerID: invokerID},
		OldState:         oldState,
		NewState:         newState,
	}
}

func (e *StateChanged) EventName() string {
	return "StateChanged"
}
