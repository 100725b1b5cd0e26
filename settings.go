package userpilot

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Settings is the settings blob the host pipeline passes to Update.
type Settings struct {
	Integrations map[string]any `json:"integrations" yaml:"integrations"`
}

// IntegrationSettings is the validated Userpilot block of a Settings blob.
type IntegrationSettings struct {
	Token string `json:"token" yaml:"token"`
}

// ParseSettings decodes a JSON settings blob.
func ParseSettings(data []byte) (Settings, error) {
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// Userpilot looks up this destination's block. The bool is false when the
// block is absent. A present block that cannot be used yields an error
// wrapping ErrSettingsMalformed or ErrInvalidToken.
func (s Settings) Userpilot() (IntegrationSettings, bool, error) {
	return s.Lookup(IntegrationKey)
}

// Lookup is Userpilot for an arbitrary integration key.
func (s Settings) Lookup(key string) (IntegrationSettings, bool, error) {
	raw, ok := s.Integrations[key]
	if !ok {
		return IntegrationSettings{}, false, nil
	}

	var token any
	switch block := raw.(type) {
	case IntegrationSettings:
		token = block.Token
	case *IntegrationSettings:
		if block == nil {
			return IntegrationSettings{}, true, fmt.Errorf("%w: %q is null", ErrSettingsMalformed, key)
		}
		token = block.Token
	case map[string]any:
		token = block["token"]
	case map[string]string:
		token = block["token"]
	case json.RawMessage:
		var decoded map[string]any
		if err := json.Unmarshal(block, &decoded); err != nil || decoded == nil {
			return IntegrationSettings{}, true, fmt.Errorf("%w: %q is not an object", ErrSettingsMalformed, key)
		}
		token = decoded["token"]
	case nil:
		return IntegrationSettings{}, true, fmt.Errorf("%w: %q is null", ErrSettingsMalformed, key)
	default:
		return IntegrationSettings{}, true, fmt.Errorf("%w: %q is %T, not an object", ErrSettingsMalformed, key, raw)
	}

	value, ok := token.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return IntegrationSettings{}, true, ErrInvalidToken
	}
	return IntegrationSettings{Token: value}, true, nil
}
