package eventbus

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"invoker-go/core/event"
)

// subscription represents a single event subscription.
type subscription struct {
	id        string
	handler   EventHandler
	invokerID string // Empty string means subscribe to all events
}

// channelEventBus is a channel-based implementation of EventBus.
type channelEventBus struct {
	eventChan     chan event.Event
	subscriptions map[string]*subscription
	mu            sync.RWMutex
	closeMu       sync.RWMutex
	closed        bool
	wg            sync.WaitGroup
	logger        *slog.Logger
}

// New creates a new EventBus with the specified buffer size.
// A nil logger falls back to slog.Default().
func New(bufferSize int, logger *slog.Logger) EventBus {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}

	bus := &channelEventBus{
		eventChan:     make(chan event.Event, bufferSize),
		subscriptions: make(map[string]*subscription),
		logger:        logger,
	}

	bus.wg.Add(1)
	go bus.dispatch()

	return bus
}

// Publish publishes an event to all subscribers.
func (b *channelEventBus) Publish(e event.Event) {
	b.closeMu.RLock()
	defer b.closeMu.RUnlock()

	if b.closed {
		return
	}

	select {
	case b.eventChan <- e:
	default:
		b.logger.Warn("Event bus full, event dropped", "event", e.EventName())
	}
}

// Subscribe subscribes to all events.
func (b *channelEventBus) Subscribe(handler EventHandler) string {
	return b.subscribe("", handler)
}

// SubscribeInvoker subscribes to events from a specific invoker.
func (b *channelEventBus) SubscribeInvoker(invokerID string, handler EventHandler) string {
	return b.subscribe(invokerID, handler)
}

func (b *channelEventBus) subscribe(invokerID string, handler EventHandler) string {
	id := uuid.NewString()

	b.mu.Lock()
	b.subscriptions[id] = &subscription{
		id:        id,
		handler:   handler,
		invokerID: invokerID,
	}
	b.mu.Unlock()

	return id
}

// Unsubscribe removes a subscription by its ID.
func (b *channelEventBus) Unsubscribe(subscriptionID string) {
	b.mu.Lock()
	delete(b.subscriptions, subscriptionID)
	b.mu.Unlock()
}

// Close shuts down the event bus after delivering queued events.
func (b *channelEventBus) Close() {
	b.closeMu.Lock()
	if b.closed {
		b.closeMu.Unlock()
		return
	}
	b.closed = true
	close(b.eventChan)
	b.closeMu.Unlock()

	b.wg.Wait()
}

// dispatch is the main event dispatch loop.
func (b *channelEventBus) dispatch() {
	defer b.wg.Done()

	for e := range b.eventChan {
		b.deliverEvent(e)
	}
}

// deliverEvent delivers an event to all matching subscribers.
func (b *channelEventBus) deliverEvent(e event.Event) {
	b.mu.RLock()
	// Copy subscriptions to avoid holding lock during handler execution
	subs := make([]*subscription, 0, len(b.subscriptions))
	for _, sub := range b.subscriptions {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	var eventInvokerID string
	if ie, ok := e.(event.InvokerEvent); ok {
		eventInvokerID = ie.InvokerID()
	}

	for _, sub := range subs {
		if sub.invokerID != "" {
			if eventInvokerID == "" || sub.invokerID != eventInvokerID {
				continue
			}
		}

		// One bad handler must not affect the others
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("Event handler panicked",
						"event", e.EventName(),
						"subscription_id", sub.id,
						"panic", r,
					)
				}
			}()
			sub.handler(e)
		}()
	}
}
