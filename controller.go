package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Controller, every pan and zoom update is forwarded to it.
type EntityStore interface {
	EmitGesture(event GestureEvent)
}

// GestureEvent carries a recognized gesture update for the ECS bridge.
type GestureEvent struct {
	Kind     GestureState
	Contacts int
	// Pan fields (valid for GesturePan)
	Pan      Point
	PanDelta Point
	// Zoom fields (valid for GestureZoom)
	Zoom       float64
	ScaleDelta float64
}

// Config holds the options for NewController. The zero value is usable:
// real Ebitengine input, default threshold, unbounded zoom.
type Config struct {
	// Viewport is the screen rectangle the view pivots zoom around.
	Viewport Rect
	// Poller overrides the input device. Nil uses NewEbitenPoller.
	Poller Poller
	// MoveThreshold overrides DefaultMoveThreshold when positive.
	MoveThreshold float64
	// EmulateTouchWithMouse lets the left mouse button act as a contact.
	EmulateTouchWithMouse bool
	// MinZoom and MaxZoom clamp the view's zoom. Zero disables a bound.
	MinZoom, MaxZoom float64
}

// Controller drives a Recognizer from an input source once per frame and
// applies its results to a View. It owns the callback registry, optional
// ECS bridge, synthetic input queue and script runner.
type Controller struct {
	recognizer *Recognizer
	source     *TouchSource
	view       *View
	handlers   handlerRegistry
	store      EntityStore
	debug      bool

	events      []TouchEvent
	cancelBuf   []TouchEvent
	injectQueue []TouchEvent
	injected    map[ContactID]struct{} // injected contacts still down
	runner      *ScriptRunner
	redraw      bool

	// resets counts ResetView calls. A batch being dispatched stops early
	// when it changes, since the reset already withdrew its contacts.
	resets uint64

	recent debugRing
}

// NewController creates a controller with a fresh recognizer and an identity view.
func NewController(cfg Config) *Controller {
	p := cfg.Poller
	if p == nil {
		p = NewEbitenPoller()
	}
	r := NewRecognizer()
	if cfg.MoveThreshold > 0 {
		r.SetMoveThreshold(cfg.MoveThreshold)
	}
	src := NewTouchSource(p)
	src.EmulateTouchWithMouse = cfg.EmulateTouchWithMouse

	v := NewView(cfg.Viewport)
	v.MinZoom = cfg.MinZoom
	v.MaxZoom = cfg.MaxZoom

	return &Controller{
		recognizer: r,
		source:     src,
		view:       v,
		events:     make([]TouchEvent, 0, maxContacts),
		injected:   make(map[ContactID]struct{}, 2),
		redraw:     true,
	}
}

// Recognizer returns the controller's recognizer.
func (c *Controller) Recognizer() *Recognizer { return c.recognizer }

// View returns the view results are applied to.
func (c *Controller) View() *View { return c.view }

// Source returns the polled touch source.
func (c *Controller) Source() *TouchSource { return c.source }

// Update advances scripts and view animation, then feeds this frame's input
// through Dispatch. Call it once per ebiten.Game.Update.
func (c *Controller) Update() {
	c.update(float32(1.0 / float64(ebiten.TPS())))
}

func (c *Controller) update(dt float32) {
	if c.runner != nil {
		c.runner.step(c)
	}
	if c.view.update(dt) {
		c.redraw = true
	}
	if c.processInjectedInput() {
		return
	}
	// The device stays muted while a synthetic contact is held down, so the
	// two never share contact IDs.
	if len(c.injected) > 0 {
		return
	}
	c.events = c.source.Poll(c.events[:0])
	c.dispatchBatch(c.events)
}

// dispatchBatch dispatches evs in order, stopping if a callback calls
// ResetView part way through.
func (c *Controller) dispatchBatch(evs []TouchEvent) {
	gen := c.resets
	for _, ev := range evs {
		if c.resets != gen {
			return
		}
		c.Dispatch(ev)
	}
}

// Dispatch feeds one event to the recognizer, applies the result to the
// view, and notifies callbacks and the entity store. A protocol violation
// panics; with debug mode on, the recent event history is printed first.
func (c *Controller) Dispatch(ev TouchEvent) Result {
	if c.debug {
		c.recent.push(ev)
		defer c.debugOnPanic()
	}

	prevState := c.recognizer.State()
	prevPan := c.recognizer.Pan()
	prevZoom := c.recognizer.Zoom()

	res := c.recognizer.HandleEvent(ev)

	if state := c.recognizer.State(); state != prevState {
		if c.debug {
			c.debugLogTransition(prevState, state)
		}
		c.fireGestureChange(prevState, state)
	}

	switch res.Kind {
	case GesturePan:
		if c.view.Apply(res) {
			c.redraw = true
		}
		c.firePan(PanContext{
			Pan:   res.Pan,
			Delta: Point{X: res.Pan.X - prevPan.X, Y: res.Pan.Y - prevPan.Y},
		})
	case GestureZoom:
		if c.view.Apply(res) {
			c.redraw = true
		}
		delta := 1.0
		if prevZoom > 0 {
			delta = res.Zoom / prevZoom
		}
		c.fireZoom(ZoomContext{Zoom: res.Zoom, ScaleDelta: delta})
	}
	return res
}

// NeedsRedraw reports whether the view changed since the last ClearRedraw.
func (c *Controller) NeedsRedraw() bool {
	return c.redraw
}

// ClearRedraw acknowledges a redraw request. Call it after drawing.
func (c *Controller) ClearRedraw() {
	c.redraw = false
}

// RequestRedraw forces the next NeedsRedraw to report true.
func (c *Controller) RequestRedraw() {
	c.redraw = true
}

// ResetView cancels every contact, drops pending synthetic input and returns
// the view to the identity transform. With a positive duration the view is
// tweened there; the recognizer adopts the identity immediately, so gestures
// made during the tween continue from it once the tween ends.
//
// It may be called from a gesture callback: the rest of the frame's events
// are dropped and fingers still down are reported afresh on the next Update.
func (c *Controller) ResetView(duration float32, easeFn ease.TweenFunc) {
	c.resets++
	c.source.Reset()
	c.injectQueue = c.injectQueue[:0]
	clear(c.injected)

	c.cancelBuf = c.recognizer.appendCancels(c.cancelBuf[:0])
	c.dispatchBatch(c.cancelBuf)
	c.recognizer.Reset()
	c.recognizer.SetTransform(Point{}, 1)

	if duration <= 0 {
		c.view.anim = nil
		c.view.Pan = Point{}
		c.view.Zoom = 1
		c.view.MarkDirty()
	} else {
		if easeFn == nil {
			easeFn = ease.OutCubic
		}
		c.view.AnimateTo(Point{}, 1, duration, easeFn)
	}
	c.redraw = true
}

// SetEntityStore sets the optional ECS bridge.
func (c *Controller) SetEntityStore(store EntityStore) {
	c.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, gesture
// transitions are logged to stderr and a protocol violation prints the
// recent event history before panicking.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}
