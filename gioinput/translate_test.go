package gioinput

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"

	"github.com/phanxgames/gesture"
)

func touch(typ pointer.Type, id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{Type: typ, Source: pointer.Touch, PointerID: id, Position: f32.Point{X: x, Y: y}}
}

func mouse(typ pointer.Type, buttons pointer.Buttons, x, y float32) pointer.Event {
	return pointer.Event{Type: typ, Source: pointer.Mouse, Buttons: buttons, Position: f32.Point{X: x, Y: y}}
}

func TestTranslateTouchLifecycle(t *testing.T) {
	var tr Translator
	var got []gesture.TouchEvent

	got = tr.Translate(touch(pointer.Press, 3, 10, 20), got)
	got = tr.Translate(touch(pointer.Drag, 3, 15, 20), got)
	got = tr.Translate(touch(pointer.Release, 3, 15, 25), got)

	want := []gesture.TouchEvent{
		{ID: 3, X: 10, Y: 20, Phase: gesture.PhaseStarted},
		{ID: 3, X: 15, Y: 20, Phase: gesture.PhaseMoved},
		{ID: 3, X: 15, Y: 25, Phase: gesture.PhaseEnded},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if tr.Live() != 0 {
		t.Errorf("Live = %d, want 0", tr.Live())
	}
}

func TestTranslateDropsOutOfLifecycleEvents(t *testing.T) {
	tests := []struct {
		name string
		evs  []pointer.Event
	}{
		{"move without press", []pointer.Event{touch(pointer.Move, 1, 5, 5)}},
		{"release without press", []pointer.Event{touch(pointer.Release, 1, 5, 5)}},
		{"scroll", []pointer.Event{touch(pointer.Scroll, 1, 5, 5)}},
		{"mouse without emulation", []pointer.Event{mouse(pointer.Press, pointer.ButtonPrimary, 5, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Translator
			var got []gesture.TouchEvent
			for _, e := range tt.evs {
				got = tr.Translate(e, got)
			}
			if len(got) != 0 {
				t.Errorf("got %v, want nothing", got)
			}
		})
	}
}

func TestTranslateDuplicatePressIgnored(t *testing.T) {
	var tr Translator
	got := tr.Translate(touch(pointer.Press, 1, 0, 0), nil)
	got = tr.Translate(touch(pointer.Press, 1, 3, 3), got)
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
}

func TestTranslateCancelAll(t *testing.T) {
	var tr Translator
	got := tr.Translate(touch(pointer.Press, 7, 0, 0), nil)
	got = tr.Translate(touch(pointer.Press, 2, 0, 0), got)
	got = tr.Translate(touch(pointer.Press, 4, 0, 0), got)
	got = tr.Translate(pointer.Event{Type: pointer.Cancel}, got[:0])

	wantIDs := []gesture.ContactID{2, 4, 7}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d events, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id || got[i].Phase != gesture.PhaseCancelled {
			t.Errorf("event %d = %+v, want Cancelled for %d", i, got[i], id)
		}
	}
	if tr.Live() != 0 {
		t.Errorf("Live = %d, want 0", tr.Live())
	}
}

func TestTranslateMouseEmulation(t *testing.T) {
	tr := Translator{EmulateTouchWithMouse: true}
	var got []gesture.TouchEvent

	got = tr.Translate(mouse(pointer.Move, 0, 1, 1), got) // hover
	got = tr.Translate(mouse(pointer.Press, pointer.ButtonSecondary, 1, 1), got)
	got = tr.Translate(mouse(pointer.Press, pointer.ButtonPrimary, 2, 2), got)
	got = tr.Translate(mouse(pointer.Drag, pointer.ButtonPrimary, 30, 2), got)
	got = tr.Translate(mouse(pointer.Release, 0, 30, 2), got)

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(got), got)
	}
	for i, ph := range []gesture.Phase{gesture.PhaseStarted, gesture.PhaseMoved, gesture.PhaseEnded} {
		if got[i].ID != gesture.MouseContactID || got[i].Phase != ph {
			t.Errorf("event %d = %+v", i, got[i])
		}
	}
}

func TestFeedDrivesRecognizer(t *testing.T) {
	var tr Translator
	r := gesture.NewRecognizer()

	tr.Feed(r.HandleEvent, touch(pointer.Press, 1, 0, 0))
	tr.Feed(r.HandleEvent, touch(pointer.Press, 2, 100, 0))
	tr.Feed(r.HandleEvent, touch(pointer.Drag, 1, -20, 0))
	tr.Feed(r.HandleEvent, touch(pointer.Drag, 2, 120, 0))
	tr.Feed(r.HandleEvent, touch(pointer.Drag, 2, 140, 0))

	if r.State() != gesture.GestureZoom {
		t.Fatalf("State = %v, want Zoom", r.State())
	}
	if z := r.Zoom(); z < 1.5999 || z > 1.6001 {
		t.Errorf("Zoom = %v, want 1.6", z)
	}

	// A system cancel releases both fingers without a protocol violation.
	tr.Feed(r.HandleEvent, pointer.Event{Type: pointer.Cancel})
	if r.ContactCount() != 0 || r.State() != gesture.GestureNone {
		t.Errorf("after cancel: contacts=%d state=%v", r.ContactCount(), r.State())
	}
}
