package userpilot

import (
	"reflect"
	"testing"
)

// TestContractCompliance validates the public API the host pipeline relies on
func TestContractCompliance(t *testing.T) {
	t.Run("New signature", func(t *testing.T) {
		funcType := reflect.TypeOf(New)

		if funcType.NumIn() != 1 {
			t.Errorf("New should take 1 parameter, got %d", funcType.NumIn())
		}
		if funcType.NumOut() != 2 {
			t.Errorf("New should return 2 values, got %d", funcType.NumOut())
		}
		if funcType.Out(1).Name() != "error" {
			t.Errorf("New second return should be error, got %s", funcType.Out(1).Name())
		}
	})

	t.Run("Lifecycle methods return their input type", func(t *testing.T) {
		pluginType := reflect.TypeOf(&Plugin{})

		methods := map[string]reflect.Type{
			"Identify": reflect.TypeOf(&IdentifyEvent{}),
			"Group":    reflect.TypeOf(&GroupEvent{}),
			"Track":    reflect.TypeOf(&TrackEvent{}),
			"Screen":   reflect.TypeOf(&ScreenEvent{}),
		}
		for name, eventType := range methods {
			method, ok := pluginType.MethodByName(name)
			if !ok {
				t.Errorf("Plugin should have method %s", name)
				continue
			}
			if method.Type.NumIn() != 2 || method.Type.In(1) != eventType {
				t.Errorf("%s should accept %s", name, eventType)
			}
			if method.Type.NumOut() != 1 || method.Type.Out(0) != eventType {
				t.Errorf("%s should return %s", name, eventType)
			}
		}
	})

	t.Run("Side-effect methods return nothing", func(t *testing.T) {
		pluginType := reflect.TypeOf(&Plugin{})

		for _, name := range []string{"Update", "Reset"} {
			method, ok := pluginType.MethodByName(name)
			if !ok {
				t.Errorf("Plugin should have method %s", name)
				continue
			}
			if method.Type.NumOut() != 0 {
				t.Errorf("%s should not return values, got %d", name, method.Type.NumOut())
			}
		}
	})

	t.Run("Events implement Event", func(t *testing.T) {
		events := map[EventType]Event{
			EventTypeIdentify: &IdentifyEvent{},
			EventTypeGroup:    &GroupEvent{},
			EventTypeTrack:    &TrackEvent{},
			EventTypeScreen:   &ScreenEvent{},
		}
		for want, event := range events {
			if got := event.EventType(); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		}
	})

	t.Run("Bridge has lifecycle methods", func(t *testing.T) {
		bridgeType := reflect.TypeOf(&Bridge{})

		for _, name := range []string{"StartListening", "StopListening", "Close", "Len"} {
			if _, ok := bridgeType.MethodByName(name); !ok {
				t.Errorf("Bridge should have method %s", name)
			}
		}
	})
}
