package userpilot

// EventType tags the variant of an Event.
type EventType string

const (
	EventTypeIdentify EventType = "identify"
	EventTypeGroup    EventType = "group"
	EventTypeTrack    EventType = "track"
	EventTypeScreen   EventType = "screen"
)

// Event is any event the host pipeline hands to a destination.
type Event interface {
	EventType() EventType
}

// EventBase holds the fields common to every event. The plugin does not read
// them; they travel with the event to the next destination.
type EventBase struct {
	MessageID string         `json:"messageId,omitempty" yaml:"messageId,omitempty"`
	Timestamp string         `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Context   map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
}

// IdentifyEvent ties a user to their traits.
type IdentifyEvent struct {
	EventBase `yaml:",inline"`

	UserID      string         `json:"userId,omitempty" yaml:"userId,omitempty"`
	AnonymousID string         `json:"anonymousId,omitempty" yaml:"anonymousId,omitempty"`
	Traits      map[string]any `json:"traits,omitempty" yaml:"traits,omitempty"`
}

func (*IdentifyEvent) EventType() EventType { return EventTypeIdentify }

// GroupEvent associates a user with a group (a Userpilot company).
type GroupEvent struct {
	EventBase `yaml:",inline"`

	UserID      string         `json:"userId,omitempty" yaml:"userId,omitempty"`
	AnonymousID string         `json:"anonymousId,omitempty" yaml:"anonymousId,omitempty"`
	GroupID     string         `json:"groupId" yaml:"groupId"`
	Traits      map[string]any `json:"traits,omitempty" yaml:"traits,omitempty"`
}

func (*GroupEvent) EventType() EventType { return EventTypeGroup }

// TrackEvent records a named user action.
type TrackEvent struct {
	EventBase `yaml:",inline"`

	Event      string         `json:"event" yaml:"event"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func (*TrackEvent) EventType() EventType { return EventTypeTrack }

// ScreenEvent records a screen view.
type ScreenEvent struct {
	EventBase `yaml:",inline"`

	Name       string         `json:"name" yaml:"name"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func (*ScreenEvent) EventType() EventType { return EventTypeScreen }
