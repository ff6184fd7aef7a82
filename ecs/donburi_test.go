package ecs

import (
	"testing"

	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []gesture.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		received = append(received, e)
	})

	store.EmitGesture(gesture.GestureEvent{
		Kind:     gesture.GesturePan,
		Contacts: 1,
		Pan:      gesture.Point{X: 40, Y: -12},
		PanDelta: gesture.Point{X: 4, Y: 0},
	})
	store.EmitGesture(gesture.GestureEvent{
		Kind:       gesture.GestureZoom,
		Contacts:   2,
		Zoom:       1.5,
		ScaleDelta: 1.1,
	})

	// Events are queued — process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Kind != gesture.GesturePan || e.Pan != (gesture.Point{X: 40, Y: -12}) {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Kind != gesture.GestureZoom || e.Zoom != 1.5 || e.Contacts != 2 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store gesture.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_FromController(t *testing.T) {
	world := donburi.NewWorld()

	c := gesture.NewController(gesture.Config{Poller: idlePoller{}})
	c.SetEntityStore(NewDonburiStore(world))

	var pans int
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		if e.Kind == gesture.GesturePan {
			pans++
		}
	})

	c.Dispatch(gesture.TouchEvent{ID: 1, X: 0, Y: 0, Phase: gesture.PhaseStarted})
	c.Dispatch(gesture.TouchEvent{ID: 1, X: 20, Y: 0, Phase: gesture.PhaseMoved})
	c.Dispatch(gesture.TouchEvent{ID: 1, X: 30, Y: 0, Phase: gesture.PhaseMoved})
	c.Dispatch(gesture.TouchEvent{ID: 1, X: 40, Y: 0, Phase: gesture.PhaseMoved})
	events.ProcessAllEvents(world)

	if pans != 2 {
		t.Errorf("pan events = %d, want 2", pans)
	}
}
