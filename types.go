package userpilot

import (
	"errors"

	"github.com/Tap30/segment-userpilot-go/adapters"
)

// Re-export adapter types for convenience
type (
	SDKAdapter    = adapters.SDKAdapter
	SetupOptions  = adapters.SetupOptions
	EventEmitter  = adapters.EventEmitter
	Subscription  = adapters.Subscription
	Payload       = adapters.Payload
	Handler       = adapters.Handler
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

// IntegrationKey is the settings key under which the host pipeline
// delivers this destination's configuration.
const IntegrationKey = "Userpilot Mobile"

// PluginType classifies a plugin within the host pipeline.
type PluginType string

const (
	PluginTypeBefore      PluginType = "before"
	PluginTypeEnrichment  PluginType = "enrichment"
	PluginTypeDestination PluginType = "destination"
	PluginTypeAfter       PluginType = "after"
)

// UpdateType tells the plugin whether settings are the first load or a refresh.
type UpdateType string

const (
	UpdateTypeInitial UpdateType = "initial"
	UpdateTypeRefresh UpdateType = "refresh"
)

var (
	// ErrSettingsMalformed is returned when the integration block exists but
	// is not an object.
	ErrSettingsMalformed = errors.New("userpilot settings malformed")
	// ErrInvalidToken is returned when the integration block has no usable token.
	ErrInvalidToken = errors.New("userpilot token missing or invalid")
	// ErrSetupFailed wraps any failure raised by the SDK during setup.
	ErrSetupFailed = errors.New("userpilot setup failed")
)

// Config configures a Plugin.
type Config struct {
	// SDKAdapter receives the forwarded calls. Required.
	SDKAdapter SDKAdapter
	// LoggerAdapter receives diagnostics. Defaults to a WARN print logger.
	LoggerAdapter LoggerAdapter
	// Logging is passed to the SDK on setup.
	Logging bool
}
