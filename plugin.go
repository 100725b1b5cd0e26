package userpilot

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Tap30/segment-userpilot-go/adapters"
)

var errSettingsAbsent = errors.New("userpilot settings absent")

// Plugin is a destination plugin forwarding analytics events to Userpilot.
type Plugin struct {
	config        Config
	sdkAdapter    SDKAdapter
	loggerAdapter LoggerAdapter
	initialized   bool
	initializing  bool
	mu            sync.RWMutex
}

// New creates a new Userpilot destination plugin
func New(config Config) (*Plugin, error) {
	if config.SDKAdapter == nil {
		return nil, errors.New("SDKAdapter is required")
	}

	plugin := &Plugin{
		config:     config,
		sdkAdapter: config.SDKAdapter,
	}

	// Use provided logger or default
	if config.LoggerAdapter != nil {
		plugin.loggerAdapter = config.LoggerAdapter
	} else {
		plugin.loggerAdapter = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	return plugin, nil
}

// Key returns the integration key the plugin reads its settings from.
func (p *Plugin) Key() string {
	return IntegrationKey
}

// Type returns the plugin's position in the host pipeline.
func (p *Plugin) Type() PluginType {
	return PluginTypeDestination
}

// Initialized reports whether the SDK has been set up.
func (p *Plugin) Initialized() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initialized
}

// Update sets up the SDK from settings the first time a usable Userpilot
// block is seen. Later calls do nothing. Failures are logged, never returned.
// The SDK is called without the plugin lock held; calls made back into the
// plugin during setup see it uninitialized.
func (p *Plugin) Update(settings Settings, updateType UpdateType) {
	p.mu.Lock()
	if p.initialized || p.initializing {
		p.mu.Unlock()
		return
	}
	p.initializing = true
	p.mu.Unlock()

	err := p.update(settings, updateType)

	p.mu.Lock()
	p.initializing = false
	if err == nil {
		p.initialized = true
	}
	p.mu.Unlock()

	if err == nil {
		p.loggerAdapter.Info("Plugin initialized successfully")
	}
}

func (p *Plugin) update(settings Settings, updateType UpdateType) error {
	integration, ok, err := settings.Lookup(p.Key())
	if !ok {
		p.loggerAdapter.Debug("No %q settings in %s update", p.Key(), updateType)
		return errSettingsAbsent
	}
	if err != nil {
		p.loggerAdapter.Error("Userpilot settings rejected: %v", err)
		return err
	}

	if err := p.setup(integration); err != nil {
		p.loggerAdapter.Error("Userpilot setup failed: %v", err)
		return err
	}
	return nil
}

func (p *Plugin) setup(integration IntegrationSettings) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrSetupFailed, r)
		}
	}()

	if err := p.sdkAdapter.Setup(integration.Token, SetupOptions{Logging: p.config.Logging}); err != nil {
		return fmt.Errorf("%w: %w", ErrSetupFailed, err)
	}
	return nil
}

// Execute routes event to the matching lifecycle method and returns what
// that method returns. Unknown event types are returned untouched.
func (p *Plugin) Execute(event Event) Event {
	switch e := event.(type) {
	case *IdentifyEvent:
		return p.Identify(e)
	case *GroupEvent:
		return p.Group(e)
	case *TrackEvent:
		return p.Track(e)
	case *ScreenEvent:
		return p.Screen(e)
	default:
		return event
	}
}

// Identify forwards the user and their sanitized traits.
func (p *Plugin) Identify(event *IdentifyEvent) *IdentifyEvent {
	if event == nil || !p.Initialized() {
		return event
	}

	userID := resolveUserID(event.UserID, event.AnonymousID)
	if userID == "" {
		p.loggerAdapter.Debug("Skipping identify without userId or anonymousId")
		return event
	}

	p.sdkAdapter.Identify(userID, sanitizeUserTraits(event.Traits), nil)
	return event
}

// Group forwards the group as the user's company.
func (p *Plugin) Group(event *GroupEvent) *GroupEvent {
	if event == nil || !p.Initialized() {
		return event
	}

	userID := resolveUserID(event.UserID, event.AnonymousID)
	if userID == "" {
		p.loggerAdapter.Debug("Skipping group without userId or anonymousId")
		return event
	}

	sanitizedTraits := sanitizeGroupTraits(event.Traits)
	company := make(map[string]any, len(sanitizedTraits)+1)
	company["id"] = event.GroupID
	for key, value := range sanitizedTraits {
		company[key] = value
	}

	p.sdkAdapter.Identify(userID, nil, company)
	return event
}

// Track forwards the event name and its properties as given.
func (p *Plugin) Track(event *TrackEvent) *TrackEvent {
	if event == nil || !p.Initialized() {
		return event
	}

	p.sdkAdapter.Track(event.Event, event.Properties)
	return event
}

// Screen forwards the screen name. Properties are not sent.
func (p *Plugin) Screen(event *ScreenEvent) *ScreenEvent {
	if event == nil || !p.Initialized() {
		return event
	}

	p.sdkAdapter.Screen(event.Name)
	return event
}

// Reset logs the current user out of Userpilot. The plugin stays initialized.
func (p *Plugin) Reset() {
	if !p.Initialized() {
		return
	}

	p.loggerAdapter.Debug("Logging out current user")
	p.sdkAdapter.Logout()
}

func resolveUserID(userID, anonymousID string) string {
	if id := strings.TrimSpace(userID); id != "" {
		return id
	}
	return strings.TrimSpace(anonymousID)
}
