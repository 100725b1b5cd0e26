package adapters

// EventEmitter is an interface for the native event layer.
// Implement this interface to relay events from a real Userpilot runtime.
type EventEmitter interface {
	// AddListener subscribes handler to the named channel.
	//
	// Returns a Subscription used to remove the listener.
	AddListener(channel string, handler Handler) Subscription
}

// Subscription is a handle to an active listener.
type Subscription interface {
	// ID identifies the subscription within its emitter.
	ID() string

	// Remove detaches the listener. Calling it more than once is a no-op.
	Remove()
}
