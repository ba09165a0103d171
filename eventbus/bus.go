// Package eventbus provides a typed, synchronous publish/subscribe bus.
//
// Handlers are keyed by the exact event type and invoked in subscription
// order on the emitting goroutine, so an event emitted during a frame is
// visible to every subscriber before Emit returns.
package eventbus

import (
	"log/slog"
	"reflect"
)

// Bus dispatches events to subscribers by event type.
// A Bus is not safe for concurrent use.
type Bus struct {
	subscribers map[reflect.Type][]any
	logger      *slog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for subscription and emission tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		b.logger = logger
	}
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		subscribers: make(map[reflect.Type][]any),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Reset drops every subscription. Subscriptions are meant to be frame-scoped:
// reset once per frame, then let each listener subscribe again.
func (b *Bus) Reset() {
	b.subscribers = make(map[reflect.Type][]any)
}

// Subscribe registers handler for events of type E. Pass a method value to
// bind the handler to its owner, e.g. Subscribe(bus, system.OnCollision).
func Subscribe[E any](b *Bus, handler func(event *E)) {
	if handler == nil {
		panic("eventbus: nil handler")
	}
	t := reflect.TypeFor[E]()
	b.subscribers[t] = append(b.subscribers[t], handler)
	b.logger.Debug("event subscribed", "event", t.String(), "subscribers", len(b.subscribers[t]))
}

// Emit delivers event to every handler subscribed to E, in subscription order.
// All handlers receive a pointer to the same instance, so changes made by one
// handler are seen by the next. Handlers may emit further events or mutate a
// registry; subscriptions added during dispatch only see later emissions.
func Emit[E any](b *Bus, event E) {
	t := reflect.TypeFor[E]()
	handlers := b.subscribers[t]
	if len(handlers) == 0 {
		return
	}

	b.logger.Debug("event emitted", "event", t.String(), "subscribers", len(handlers))
	for _, h := range handlers {
		h.(func(*E))(&event)
	}
}

// HasSubscribers reports whether any handler listens for E.
func HasSubscribers[E any](b *Bus) bool {
	return len(b.subscribers[reflect.TypeFor[E]()]) > 0
}

// SubscriberCount returns the number of handlers subscribed to E.
func SubscriberCount[E any](b *Bus) int {
	return len(b.subscribers[reflect.TypeFor[E]()])
}
