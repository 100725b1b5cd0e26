package adapters

import (
	"testing"

	"github.com/google/uuid"
)

func TestLocalEventEmitter_Emit(t *testing.T) {
	t.Run("should deliver to listeners in registration order", func(t *testing.T) {
		emitter := NewLocalEventEmitter()
		var order []string

		emitter.AddListener("channel", func(Payload) { order = append(order, "first") })
		emitter.AddListener("channel", func(Payload) { order = append(order, "second") })
		emitter.AddListener("other", func(Payload) { order = append(order, "other") })

		if n := emitter.Emit("channel", Payload{"k": "v"}); n != 2 {
			t.Errorf("expected 2 listeners invoked, got %d", n)
		}
		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected delivery order: %v", order)
		}
	})

	t.Run("should pass the payload through", func(t *testing.T) {
		emitter := NewLocalEventEmitter()
		var got Payload

		emitter.AddListener("channel", func(p Payload) { got = p })
		emitter.Emit("channel", Payload{"url": "scheme://host/path"})

		if url, _ := got.URL(); url != "scheme://host/path" {
			t.Errorf("unexpected payload: %v", got)
		}
	})

	t.Run("should deliver nothing without listeners", func(t *testing.T) {
		emitter := NewLocalEventEmitter()

		if n := emitter.Emit("channel", nil); n != 0 {
			t.Errorf("expected 0 listeners invoked, got %d", n)
		}
	})

	t.Run("should allow removal from inside a handler", func(t *testing.T) {
		emitter := NewLocalEventEmitter()
		calls := 0
		var sub Subscription
		sub = emitter.AddListener("channel", func(Payload) {
			calls++
			sub.Remove()
		})

		emitter.Emit("channel", nil)
		emitter.Emit("channel", nil)

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})
}

func TestLocalEventEmitter_Remove(t *testing.T) {
	emitter := NewLocalEventEmitter()
	calls := 0

	first := emitter.AddListener("channel", func(Payload) { calls++ })
	second := emitter.AddListener("channel", func(Payload) { calls += 10 })
	if emitter.ListenerCount("channel") != 2 {
		t.Fatalf("expected 2 listeners, got %d", emitter.ListenerCount("channel"))
	}

	first.Remove()
	first.Remove()
	emitter.Emit("channel", nil)

	if calls != 10 {
		t.Errorf("expected only second listener to run, got %d", calls)
	}
	if emitter.ListenerCount("channel") != 1 {
		t.Errorf("expected 1 listener, got %d", emitter.ListenerCount("channel"))
	}

	second.Remove()
	if emitter.ListenerCount("channel") != 0 {
		t.Errorf("expected 0 listeners, got %d", emitter.ListenerCount("channel"))
	}
}

func TestLocalEventEmitter_SubscriptionID(t *testing.T) {
	emitter := NewLocalEventEmitter()

	first := emitter.AddListener("channel", nil)
	second := emitter.AddListener("channel", nil)

	if first.ID() == second.ID() {
		t.Error("expected distinct subscription ids")
	}
	if _, err := uuid.Parse(first.ID()); err != nil {
		t.Errorf("expected uuid subscription id, got %q", first.ID())
	}
	if emitter.Emit("channel", nil) != 2 {
		t.Error("expected nil handlers to be registered as no-ops")
	}
}

func TestLocalEventEmitter_Interface(t *testing.T) {
	var _ EventEmitter = (*LocalEventEmitter)(nil)
}
