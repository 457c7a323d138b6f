// Package event provides the synchronous topic-keyed emitter the
// editor's components use to talk to each other. Delivery is strictly
// in subscription order and completes before Emit returns, so two
// handler passes never interleave.
package event

import (
	"sync"
)

// Topic identifies an event stream (e.g. "pointer.over").
type Topic string

// Handler receives every payload emitted on a subscribed topic.
type Handler func(payload any)

// Subscription is a handle returned by Subscribe, used to unsubscribe.
type Subscription struct {
	id      uint64
	topic   Topic
	handler Handler
	once    bool
}

// Topic returns the topic this subscription listens on.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// Once makes the subscription fire for a single event and then remove
// itself.
func Once() SubscriptionOption {
	return func(s *Subscription) {
		s.once = true
	}
}

// Emitter routes events from publishers to subscribers.
// The zero value is not usable; call NewEmitter.
type Emitter struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]*Subscription
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		subs: make(map[Topic][]*Subscription),
	}
}

// Subscribe registers a handler for the topic and returns its handle.
// A nil handler or empty topic returns nil.
func (e *Emitter) Subscribe(topic Topic, handler Handler, opts ...SubscriptionOption) *Subscription {
	if handler == nil || topic == "" {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	sub := &Subscription{
		id:      e.nextID,
		topic:   topic,
		handler: handler,
	}
	for _, opt := range opts {
		opt(sub)
	}
	e.subs[topic] = append(e.subs[topic], sub)
	return sub
}

// Unsubscribe removes a subscription. Unknown or nil handles are
// ignored, so tearing down listeners twice is safe.
func (e *Emitter) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.remove(sub)
}

func (e *Emitter) remove(sub *Subscription) {
	list := e.subs[sub.topic]
	for i, cur := range list {
		if cur.id == sub.id {
			e.subs[sub.topic] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Emit delivers the payload to every handler subscribed to the topic,
// in subscription order, before returning. Handlers may subscribe or
// unsubscribe during delivery; such changes take effect for the next
// Emit, except that a removed handler already queued still runs.
func (e *Emitter) Emit(topic Topic, payload any) {
	e.mu.Lock()
	list := e.subs[topic]
	snapshot := make([]*Subscription, len(list))
	copy(snapshot, list)
	for _, sub := range snapshot {
		if sub.once {
			e.remove(sub)
		}
	}
	e.mu.Unlock()

	for _, sub := range snapshot {
		sub.handler(payload)
	}
}

// SubscriberCount returns the number of handlers on a topic.
func (e *Emitter) SubscriberCount(topic Topic) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs[topic])
}
