package event_test

import (
	"testing"

	"github.com/jfcardenas/panapp/pkg/event"
)

func TestFireDispatchesInOrder(t *testing.T) {
	bus := event.NewBus()

	var got []int
	bus.Listen("ping", func(payload interface{}) { got = append(got, 1) })
	bus.Listen("ping", func(payload interface{}) { got = append(got, 2) })

	bus.Fire("ping", nil)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected handlers in registration order, got %v", got)
	}
}

func TestFirePassesPayload(t *testing.T) {
	bus := event.NewBus()

	var got interface{}
	bus.Listen("saved", func(payload interface{}) { got = payload })

	bus.Fire("saved", "record-1")

	if got != "record-1" {
		t.Errorf("expected payload record-1, got %v", got)
	}
}

func TestFireUnknownEventIsNoop(t *testing.T) {
	bus := event.NewBus()
	bus.Fire("nobody-listens", nil) // must not panic
}

func TestFlush(t *testing.T) {
	bus := event.NewBus()

	called := false
	bus.Listen("ping", func(payload interface{}) { called = true })
	bus.Flush()
	bus.Fire("ping", nil)

	if called {
		t.Error("expected no handlers after Flush")
	}
}
