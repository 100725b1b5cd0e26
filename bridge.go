package userpilot

import (
	"errors"
	"sync"

	"github.com/Tap30/segment-userpilot-go/adapters"
)

// Native channels the Userpilot runtime emits on.
const (
	ChannelAnalytics  = "UserpilotAnalyticsEvent"
	ChannelExperience = "UserpilotExperienceEvent"
	ChannelNavigation = "UserpilotNavigationEvent"
)

// Handlers are the callbacks a Bridge subscribes. Nil handlers are skipped.
type Handlers struct {
	OnAnalyticsEvent  Handler
	OnExperienceEvent Handler
	OnNavigationEvent Handler
}

// Bridge relays native Userpilot events to application handlers.
type Bridge struct {
	emitter       EventEmitter
	loggerAdapter LoggerAdapter
	subscriptions []Subscription
	generation    uint64
	mu            sync.Mutex
}

// NewBridge creates a Bridge listening on emitter. A nil logger is
// replaced by a no-op logger.
func NewBridge(emitter EventEmitter, logger LoggerAdapter) (*Bridge, error) {
	if emitter == nil {
		return nil, errors.New("EventEmitter is required")
	}
	if logger == nil {
		logger = adapters.NewNoOpLoggerAdapter()
	}
	return &Bridge{
		emitter:       emitter,
		loggerAdapter: logger,
	}, nil
}

// StartListening drops any existing subscriptions and subscribes the
// supplied handlers. The emitter is called without the bridge lock held, so
// handlers replayed during subscribe may call back into the bridge.
func (b *Bridge) StartListening(handlers Handlers) {
	generation := b.detach()

	var fresh []Subscription
	if handlers.OnAnalyticsEvent != nil {
		fresh = b.subscribe(fresh, ChannelAnalytics, handlers.OnAnalyticsEvent)
	}

	if handlers.OnExperienceEvent != nil {
		fresh = b.subscribe(fresh, ChannelExperience, handlers.OnExperienceEvent)
	}

	if handlers.OnNavigationEvent != nil {
		onNavigation := handlers.OnNavigationEvent
		fresh = b.subscribe(fresh, ChannelNavigation, func(payload Payload) {
			onNavigation(payload)
		})
	}

	b.mu.Lock()
	if b.generation != generation {
		// StopListening or another StartListening ran while subscribing.
		b.mu.Unlock()
		b.remove(fresh)
		return
	}
	b.subscriptions = fresh
	b.mu.Unlock()

	b.loggerAdapter.Debug("Listening on %d channels", len(fresh))
}

// StopListening removes every subscription. It is safe to call repeatedly.
func (b *Bridge) StopListening() {
	b.detach()
}

// Len returns the number of live subscriptions.
func (b *Bridge) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscriptions)
}

// Close stops listening.
func (b *Bridge) Close() error {
	b.StopListening()
	return nil
}

func (b *Bridge) subscribe(subs []Subscription, channel string, handler Handler) []Subscription {
	sub := b.emitter.AddListener(channel, handler)
	if sub == nil {
		b.loggerAdapter.Warn("Emitter returned no subscription for %s", channel)
		return subs
	}
	return append(subs, sub)
}

// detach takes the recorded subscriptions out under the lock, removes them
// outside it and returns the new generation.
func (b *Bridge) detach() uint64 {
	b.mu.Lock()
	old := b.subscriptions
	b.subscriptions = nil
	b.generation++
	generation := b.generation
	b.mu.Unlock()

	b.remove(old)
	return generation
}

func (b *Bridge) remove(subs []Subscription) {
	if len(subs) == 0 {
		return
	}
	for _, sub := range subs {
		sub.Remove()
	}
	b.loggerAdapter.Debug("Removed %d subscriptions", len(subs))
}
