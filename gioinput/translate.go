package gioinput

import (
	"maps"
	"slices"

	"gioui.org/io/pointer"

	"github.com/phanxgames/gesture"
)

// DispatchFunc receives translated touch events. Controller.Dispatch and
// Recognizer.HandleEvent both have this shape.
type DispatchFunc func(ev gesture.TouchEvent) gesture.Result

// Translator converts Gio pointer events into touch events. It remembers
// which pointers are pressed so that the event stream it produces always
// obeys the contact lifecycle: no Moved or Ended for an unknown contact and
// no second Started for a live one. The zero value is ready to use.
type Translator struct {
	// EmulateTouchWithMouse maps the primary mouse button onto
	// gesture.MouseContactID.
	EmulateTouchWithMouse bool

	live map[gesture.ContactID]struct{}
	buf  []gesture.TouchEvent
}

// Live returns the number of contacts currently pressed.
func (t *Translator) Live() int {
	return len(t.live)
}

// Translate appends the touch events produced by e to buf and returns the
// extended slice. Events that do not affect a contact (hover, scroll,
// enter/leave, stray releases) produce nothing.
func (t *Translator) Translate(e pointer.Event, buf []gesture.TouchEvent) []gesture.TouchEvent {
	if e.Type == pointer.Cancel {
		return t.Cancel(buf)
	}

	id, ok := t.contactID(e)
	if !ok {
		return buf
	}
	x, y := float64(e.Position.X), float64(e.Position.Y)
	_, pressed := t.live[id]

	switch e.Type {
	case pointer.Press:
		if pressed {
			return buf
		}
		if e.Source == pointer.Mouse && e.Buttons&pointer.ButtonPrimary == 0 {
			return buf
		}
		if t.live == nil {
			t.live = make(map[gesture.ContactID]struct{})
		}
		t.live[id] = struct{}{}
		return append(buf, gesture.TouchEvent{ID: id, X: x, Y: y, Phase: gesture.PhaseStarted})
	case pointer.Drag, pointer.Move:
		if !pressed {
			return buf
		}
		return append(buf, gesture.TouchEvent{ID: id, X: x, Y: y, Phase: gesture.PhaseMoved})
	case pointer.Release:
		if !pressed {
			return buf
		}
		delete(t.live, id)
		return append(buf, gesture.TouchEvent{ID: id, X: x, Y: y, Phase: gesture.PhaseEnded})
	}
	return buf
}

// Cancel appends a Cancelled event for every pressed contact, in ascending
// id order, and forgets them.
func (t *Translator) Cancel(buf []gesture.TouchEvent) []gesture.TouchEvent {
	for _, id := range slices.Sorted(maps.Keys(t.live)) {
		buf = append(buf, gesture.TouchEvent{ID: id, Phase: gesture.PhaseCancelled})
		delete(t.live, id)
	}
	return buf
}

// Feed translates e and passes the resulting events to dispatch in order.
func (t *Translator) Feed(dispatch DispatchFunc, e pointer.Event) {
	t.buf = t.Translate(e, t.buf[:0])
	for _, ev := range t.buf {
		dispatch(ev)
	}
}

func (t *Translator) contactID(e pointer.Event) (gesture.ContactID, bool) {
	switch e.Source {
	case pointer.Touch:
		return gesture.ContactID(e.PointerID), true
	case pointer.Mouse:
		if t.EmulateTouchWithMouse {
			return gesture.MouseContactID, true
		}
	}
	return 0, false
}
