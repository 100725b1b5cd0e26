// Package scenario loads scripted demo sessions from YAML.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	userpilot "github.com/Tap30/segment-userpilot-go"
)

// StepReset is the step type that logs the current user out.
const StepReset = "reset"

// ErrUnknownStep is returned for steps whose type is not recognised.
var ErrUnknownStep = errors.New("unknown step type")

// Scenario is a scripted demo session.
type Scenario struct {
	Settings userpilot.Settings `yaml:"settings"`
	Steps    []Step             `yaml:"steps"`
	Native   []NativeEvent      `yaml:"native"`
}

// Step is a single host pipeline call.
type Step struct {
	Type        string         `yaml:"type"`
	UserID      string         `yaml:"userId"`
	AnonymousID string         `yaml:"anonymousId"`
	GroupID     string         `yaml:"groupId"`
	Event       string         `yaml:"event"`
	Name        string         `yaml:"name"`
	Traits      map[string]any `yaml:"traits"`
	Properties  map[string]any `yaml:"properties"`
}

// NativeEvent is a payload the demo emits on a native channel once the
// steps have run.
type NativeEvent struct {
	Channel string         `yaml:"channel"`
	Payload map[string]any `yaml:"payload"`
}

var channelAliases = map[string]string{
	"analytics":  userpilot.ChannelAnalytics,
	"experience": userpilot.ChannelExperience,
	"navigation": userpilot.ChannelNavigation,
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario document and validates its steps.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	for i, step := range s.Steps {
		if step.Type == StepReset {
			continue
		}
		if _, err := step.ToEvent(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	for i := range s.Native {
		if full, ok := channelAliases[s.Native[i].Channel]; ok {
			s.Native[i].Channel = full
		}
	}

	return &s, nil
}

// IsReset reports whether the step is a reset call.
func (s Step) IsReset() bool {
	return s.Type == StepReset
}

// ToEvent converts the step into the event the plugin receives.
func (s Step) ToEvent() (userpilot.Event, error) {
	switch userpilot.EventType(s.Type) {
	case userpilot.EventTypeIdentify:
		return &userpilot.IdentifyEvent{
			UserID:      s.UserID,
			AnonymousID: s.AnonymousID,
			Traits:      s.Traits,
		}, nil
	case userpilot.EventTypeGroup:
		return &userpilot.GroupEvent{
			UserID:      s.UserID,
			AnonymousID: s.AnonymousID,
			GroupID:     s.GroupID,
			Traits:      s.Traits,
		}, nil
	case userpilot.EventTypeTrack:
		return &userpilot.TrackEvent{
			Event:      s.Event,
			Properties: s.Properties,
		}, nil
	case userpilot.EventTypeScreen:
		return &userpilot.ScreenEvent{
			Name:       s.Name,
			Properties: s.Properties,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, s.Type)
	}
}
