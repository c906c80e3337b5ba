// Package eventbus provides the event bus for publishing and subscribing to events.
package eventbus

import (
	"invoker-go/core/event"
)

// EventBus is the interface for the event bus.
type EventBus interface {
	// Publish publishes an event to all subscribers.
	// This method is non-blocking; events are queued for async dispatch.
	Publish(e event.Event)

	// Subscribe subscribes to all events.
	// Returns a subscription ID that can be used to unsubscribe.
	Subscribe(handler EventHandler) string

	// SubscribeInvoker subscribes to events from a specific invoker.
	// Only events implementing InvokerEvent with matching InvokerID will be delivered.
	// Returns a subscription ID that can be used to unsubscribe.
	SubscribeInvoker(invokerID string, handler EventHandler) string

	// Unsubscribe removes a subscription by its ID.
	Unsubscribe(subscriptionID string)

	// Close drains queued events and shuts down the event bus.
	// After Close is called, Publish will be a no-op.
	Close()
}

// EventHandler is a function that handles an event.
type EventHandler func(e event.Event)
