package adapters

import (
	"sync"

	"github.com/google/uuid"
)

// LocalEventEmitter is an in-process EventEmitter. Payloads passed to Emit
// are delivered synchronously to the listeners registered at call time.
type LocalEventEmitter struct {
	mu        sync.RWMutex
	listeners map[string]map[string]Handler
	order     map[string][]string
}

// Ensure LocalEventEmitter implements EventEmitter interface
var _ EventEmitter = (*LocalEventEmitter)(nil)

// NewLocalEventEmitter creates a new LocalEventEmitter with no listeners.
func NewLocalEventEmitter() *LocalEventEmitter {
	return &LocalEventEmitter{
		listeners: make(map[string]map[string]Handler),
		order:     make(map[string][]string),
	}
}

// AddListener registers handler on channel. A nil handler is registered as
// a no-op so the returned Subscription is always usable.
func (e *LocalEventEmitter) AddListener(channel string, handler Handler) Subscription {
	if handler == nil {
		handler = func(Payload) {}
	}

	id := uuid.NewString()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners[channel] == nil {
		e.listeners[channel] = make(map[string]Handler)
	}
	e.listeners[channel][id] = handler
	e.order[channel] = append(e.order[channel], id)

	return &localSubscription{id: id, channel: channel, emitter: e}
}

// Emit delivers payload to every listener on channel in registration order.
// It returns the number of listeners invoked.
func (e *LocalEventEmitter) Emit(channel string, payload Payload) int {
	e.mu.RLock()
	ids := e.order[channel]
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, e.listeners[channel][id])
	}
	e.mu.RUnlock()

	// Handlers run outside the lock so they may add or remove listeners.
	for _, handler := range handlers {
		handler(payload)
	}
	return len(handlers)
}

// ListenerCount returns the number of listeners on channel.
func (e *LocalEventEmitter) ListenerCount(channel string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[channel])
}

func (e *LocalEventEmitter) remove(channel, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.listeners[channel][id]; !ok {
		return
	}
	delete(e.listeners[channel], id)

	ids := e.order[channel]
	for i, existing := range ids {
		if existing == id {
			e.order[channel] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(e.listeners[channel]) == 0 {
		delete(e.listeners, channel)
		delete(e.order, channel)
	}
}

type localSubscription struct {
	id      string
	channel string
	emitter *LocalEventEmitter
}

func (s *localSubscription) ID() string {
	return s.id
}

func (s *localSubscription) Remove() {
	s.emitter.remove(s.channel, s.id)
}
