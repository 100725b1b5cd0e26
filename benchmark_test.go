package userpilot

import (
	"testing"

	"github.com/Tap30/segment-userpilot-go/adapters"
)

func newBenchPlugin(b *testing.B) *Plugin {
	b.Helper()
	plugin, err := New(Config{
		SDKAdapter:    adapters.NewNoOpSDKAdapter(),
		LoggerAdapter: adapters.NewNoOpLoggerAdapter(),
	})
	if err != nil {
		b.Fatal(err)
	}
	plugin.Update(testSettings("bench-token"), UpdateTypeInitial)
	return plugin
}

// Benchmark plugin creation
func BenchmarkNew(b *testing.B) {
	config := Config{SDKAdapter: adapters.NewNoOpSDKAdapter()}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plugin, _ := New(config)
		_ = plugin
	}
}

// Benchmark trait sanitization
func BenchmarkSanitizeTraits(b *testing.B) {
	traits := map[string]any{
		"name":      "John Doe",
		"email":     "john@example.com",
		"createdAt": "2023-01-01",
		"phone":     nil,
		"plan":      "pro",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizeUserTraits(traits)
	}
}

// Benchmark forwarding
func BenchmarkIdentify(b *testing.B) {
	plugin := newBenchPlugin(b)
	event := &IdentifyEvent{UserID: " user123 ", Traits: map[string]any{"createdAt": "2023-01-01"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plugin.Identify(event)
	}
}

func BenchmarkTrack(b *testing.B) {
	plugin := newBenchPlugin(b)
	event := &TrackEvent{Event: "Button Clicked", Properties: map[string]any{"button": "submit"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plugin.Track(event)
	}
}

func BenchmarkExecute(b *testing.B) {
	plugin := newBenchPlugin(b)
	events := []Event{
		&IdentifyEvent{UserID: "user123"},
		&GroupEvent{UserID: "user123", GroupID: "g1"},
		&TrackEvent{Event: "Signed Up"},
		&ScreenEvent{Name: "Home"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plugin.Execute(events[i%len(events)])
	}
}
