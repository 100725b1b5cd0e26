package adapters

// Payload is an opaque event body delivered by the native Userpilot layer.
type Payload map[string]any

// URL returns the payload's "url" field when it holds a non-empty string.
// Navigation events carry it for deep-link routing.
func (p Payload) URL() (string, bool) {
	raw, ok := p["url"]
	if !ok {
		return "", false
	}
	url, ok := raw.(string)
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// Handler receives payloads pushed on a native event channel.
type Handler func(Payload)

// SetupOptions are passed to the Userpilot SDK on setup.
type SetupOptions struct {
	Logging bool `json:"logging"`
}
