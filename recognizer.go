package gesture

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// DefaultMoveThreshold is the distance in pixels every contact must travel
// from its press position before a gesture is recognized.
const DefaultMoveThreshold = 8.0

// contact is one active touch point.
type contact struct {
	id      ContactID
	start   Vec2 // position at press time, never updated
	current Vec2
}

func (c *contact) distanceFromStart() float64 {
	return dist(c.start, c.current)
}

func dist(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ProtocolError describes an event that broke the per-contact ordering
// contract. The recognizer panics with a *ProtocolError; it is never
// returned as a value.
type ProtocolError struct {
	Op    string
	ID    ContactID
	Phase Phase
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("gesture: %s: %s event for contact %d", e.Op, e.Phase, e.ID)
}

// Recognizer classifies a stream of touch events into no gesture, a
// single-finger pan or a two-finger pinch zoom.
//
// The committed pan and zoom persist across gestures: a new gesture freezes
// the current value as its origin and reports absolute values relative to it.
// A Recognizer is not safe for concurrent use.
type Recognizer struct {
	contacts  map[ContactID]*contact
	state     GestureState
	threshold float64

	panOrigin  Point
	panCurrent Point

	zoomOrigin  float64
	zoomCurrent float64
	zoomPair    [2]ContactID
}

// NewRecognizer returns a recognizer at rest with pan (0, 0) and zoom 1.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		contacts:    make(map[ContactID]*contact, 4),
		threshold:   DefaultMoveThreshold,
		zoomOrigin:  1,
		zoomCurrent: 1,
	}
}

// SetMoveThreshold sets the minimum travel in pixels before contacts are
// classified as a gesture.
func (r *Recognizer) SetMoveThreshold(pixels float64) {
	r.threshold = pixels
}

// State returns the current classification.
func (r *Recognizer) State() GestureState { return r.state }

// Pan returns the last committed pan offset.
func (r *Recognizer) Pan() Point { return r.panCurrent }

// Zoom returns the last committed zoom factor.
func (r *Recognizer) Zoom() float64 { return r.zoomCurrent }

// ContactCount returns the number of contacts currently down.
func (r *Recognizer) ContactCount() int { return len(r.contacts) }

// SetTransform replaces the committed pan and zoom and drops any gesture in
// progress, so the next gesture starts from these values. Panics if zoom is
// not positive.
func (r *Recognizer) SetTransform(pan Point, zoom float64) {
	if !(zoom > 0) || math.IsInf(zoom, 1) {
		panic(fmt.Sprintf("gesture: SetTransform with invalid zoom %v", zoom))
	}
	r.panOrigin, r.panCurrent = pan, pan
	r.zoomOrigin, r.zoomCurrent = zoom, zoom
	r.state = GestureNone
}

// Reset forgets every contact and returns to GestureNone. The committed
// transform is kept.
func (r *Recognizer) Reset() {
	clear(r.contacts)
	r.state = GestureNone
}

// HandleEvent advances the state machine by one event. Events that break the
// ordering contract (a Started for a live ID, any other phase for an unknown
// ID) panic with a *ProtocolError.
func (r *Recognizer) HandleEvent(ev TouchEvent) Result {
	pos := Vec2{X: ev.X, Y: ev.Y}

	switch ev.Phase {
	case PhaseStarted:
		if _, ok := r.contacts[ev.ID]; ok {
			panic(&ProtocolError{Op: "duplicate contact", ID: ev.ID, Phase: ev.Phase})
		}
		r.contacts[ev.ID] = &contact{id: ev.ID, start: pos, current: pos}
		r.state = GestureNone

	case PhaseMoved:
		c, ok := r.contacts[ev.ID]
		if !ok {
			panic(&ProtocolError{Op: "unknown contact", ID: ev.ID, Phase: ev.Phase})
		}
		c.current = pos

		switch r.state {
		case GestureNone:
			r.classify()
		case GesturePan:
			return PanResult(r.updatePan())
		case GestureZoom:
			return ZoomResult(r.updateZoom())
		}

	case PhaseEnded, PhaseCancelled:
		if _, ok := r.contacts[ev.ID]; !ok {
			panic(&ProtocolError{Op: "unknown contact", ID: ev.ID, Phase: ev.Phase})
		}
		delete(r.contacts, ev.ID)
		r.state = GestureNone

	default:
		panic(&ProtocolError{Op: "invalid phase", ID: ev.ID, Phase: ev.Phase})
	}

	return Result{}
}

// classify promotes GestureNone to Pan or Zoom once every active contact has
// moved past the threshold. Partial movement never classifies.
func (r *Recognizer) classify() {
	moved := 0
	for _, c := range r.contacts {
		if c.distanceFromStart() > r.threshold {
			moved++
		}
	}
	if moved != len(r.contacts) {
		return
	}

	switch len(r.contacts) {
	case 1:
		r.panOrigin = r.panCurrent
		r.state = GesturePan
	case 2:
		r.zoomPair = r.sortedPair()
		r.zoomOrigin = r.zoomCurrent
		r.state = GestureZoom
	}
}

func (r *Recognizer) updatePan() Point {
	if len(r.contacts) != 1 {
		panic(fmt.Sprintf("gesture: pan with %d contacts", len(r.contacts)))
	}
	for _, c := range r.contacts {
		dx := math.Round(c.current.X - c.start.X)
		dy := math.Round(c.current.Y - c.start.Y)
		r.panCurrent = r.panOrigin.Add(Point{X: int(dx), Y: int(dy)})
	}
	return r.panCurrent
}

func (r *Recognizer) updateZoom() float64 {
	if len(r.contacts) != 2 {
		panic(fmt.Sprintf("gesture: zoom with %d contacts", len(r.contacts)))
	}
	c0, c1 := r.contacts[r.zoomPair[0]], r.contacts[r.zoomPair[1]]
	if c0 == nil || c1 == nil {
		panic("gesture: zoom pair no longer active")
	}

	initial := dist(c0.start, c1.start)
	if initial == 0 {
		// Both contacts pressed on the same point; the ratio is undefined.
		r.zoomCurrent = r.zoomOrigin
		return r.zoomCurrent
	}
	r.zoomCurrent = r.zoomOrigin * dist(c0.current, c1.current) / initial
	return r.zoomCurrent
}

// sortedPair returns the two active contact IDs in ascending order.
func (r *Recognizer) sortedPair() [2]ContactID {
	var pair [2]ContactID
	i := 0
	for id := range r.contacts {
		pair[i] = id
		i++
		if i == 2 {
			break
		}
	}
	if pair[0] > pair[1] {
		pair[0], pair[1] = pair[1], pair[0]
	}
	return pair
}

// appendCancels appends a Cancelled event for every active contact, in
// ascending ID order, at its current position. The recognizer is not
// modified; dispatching the events is what removes the contacts.
func (r *Recognizer) appendCancels(buf []TouchEvent) []TouchEvent {
	n := len(buf)
	for id, c := range r.contacts {
		buf = append(buf, TouchEvent{ID: id, X: c.current.X, Y: c.current.Y, Phase: PhaseCancelled})
	}
	slices.SortFunc(buf[n:], func(a, b TouchEvent) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return buf
}
