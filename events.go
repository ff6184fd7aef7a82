package gesture

// PanContext carries data for pan callbacks.
type PanContext struct {
	Pan   Point // absolute pan offset
	Delta Point // change since the previous committed pan
}

// ZoomContext carries data for zoom callbacks.
type ZoomContext struct {
	Zoom       float64 // absolute zoom factor
	ScaleDelta float64 // ratio to the previous committed zoom
}

// eventKind identifies a callback list in the registry.
type eventKind uint8

const (
	eventPan eventKind = iota
	eventZoom
	eventGestureChange
)

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	pan           []handler[func(PanContext)]
	zoom          []handler[func(ZoomContext)]
	gestureChange []handler[func(from, to GestureState)]
	nextID        uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event eventKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case eventPan:
		h.reg.pan = removeHandler(h.reg.pan, h.id)
	case eventZoom:
		h.reg.zoom = removeHandler(h.reg.zoom, h.id)
	case eventGestureChange:
		h.reg.gestureChange = removeHandler(h.reg.gestureChange, h.id)
	}
}

func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[F]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnPan registers a callback for every pan update.
func (c *Controller) OnPan(fn func(PanContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pan = append(c.handlers.pan, handler[func(PanContext)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: eventPan}
}

// OnZoom registers a callback for every zoom update.
func (c *Controller) OnZoom(fn func(ZoomContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.zoom = append(c.handlers.zoom, handler[func(ZoomContext)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: eventZoom}
}

// OnGestureChange registers a callback fired whenever the recognizer's
// classification changes, including falling back to GestureNone.
func (c *Controller) OnGestureChange(fn func(from, to GestureState)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.gestureChange = append(c.handlers.gestureChange,
		handler[func(from, to GestureState)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: eventGestureChange}
}

// --- Dispatch ---

func (c *Controller) firePan(ctx PanContext) {
	for _, h := range c.handlers.pan {
		h.fn(ctx)
	}
	if c.store != nil {
		c.store.EmitGesture(GestureEvent{
			Kind:     GesturePan,
			Contacts: c.recognizer.ContactCount(),
			Pan:      ctx.Pan,
			PanDelta: ctx.Delta,
		})
	}
}

func (c *Controller) fireZoom(ctx ZoomContext) {
	for _, h := range c.handlers.zoom {
		h.fn(ctx)
	}
	if c.store != nil {
		c.store.EmitGesture(GestureEvent{
			Kind:       GestureZoom,
			Contacts:   c.recognizer.ContactCount(),
			Zoom:       ctx.Zoom,
			ScaleDelta: ctx.ScaleDelta,
		})
	}
}

func (c *Controller) fireGestureChange(from, to GestureState) {
	for _, h := range c.handlers.gestureChange {
		h.fn(from, to)
	}
}
