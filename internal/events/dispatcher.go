package events

import (
	"context"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Unsubscribe removes a previously registered handler. Calling it more
// than once is harmless.
type Unsubscribe func()

// Dispatcher interface allows event publication/subscription. Subscribe
// returns an Unsubscribe handle; callers that outlive their interest in
// the feed must invoke it, otherwise the dispatcher keeps firing a stale
// callback.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler) Unsubscribe
	SubscribeAll(handler EventHandler) Unsubscribe
}

// allEvents is the internal key for handlers registered via SubscribeAll.
const allEvents EventType = "*"

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[EventType]map[uint64]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType]map[uint64]EventHandler),
	}
}

// Publish synchronously invokes handlers for the given event.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.listeners[event.Type])+len(d.listeners[allEvents]))
	for _, h := range d.listeners[event.Type] {
		handlers = append(handlers, h)
	}
	for _, h := range d.listeners[allEvents] {
		handlers = append(handlers, h)
	}
	d.mu.RUnlock()

	for _, handler := range handlers {
		// handler errors do not stop delivery to other handlers
		_ = handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) Unsubscribe {
	return d.register(eventType, handler)
}

// SubscribeAll registers a handler invoked for every published event.
func (d *inMemoryDispatcher) SubscribeAll(handler EventHandler) Unsubscribe {
	return d.register(allEvents, handler)
}

func (d *inMemoryDispatcher) register(eventType EventType, handler EventHandler) Unsubscribe {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	if d.listeners[eventType] == nil {
		d.listeners[eventType] = make(map[uint64]EventHandler)
	}
	d.listeners[eventType][id] = handler

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners[eventType], id)
	}
}
