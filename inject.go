package gesture

// InjectStart queues a synthetic press of contact id at the given screen
// coordinates. Injected events are consumed one per frame by Update; real
// device input is ignored while any are queued or held down.
func (c *Controller) InjectStart(id ContactID, x, y float64) {
	c.injectQueue = append(c.injectQueue, TouchEvent{ID: id, X: x, Y: y, Phase: PhaseStarted})
}

// InjectMove queues a synthetic move of contact id.
func (c *Controller) InjectMove(id ContactID, x, y float64) {
	c.injectQueue = append(c.injectQueue, TouchEvent{ID: id, X: x, Y: y, Phase: PhaseMoved})
}

// InjectEnd queues a synthetic release of contact id.
func (c *Controller) InjectEnd(id ContactID, x, y float64) {
	c.injectQueue = append(c.injectQueue, TouchEvent{ID: id, X: x, Y: y, Phase: PhaseEnded})
}

// InjectCancel queues a synthetic cancellation of contact id.
func (c *Controller) InjectCancel(id ContactID, x, y float64) {
	c.injectQueue = append(c.injectQueue, TouchEvent{ID: id, X: x, Y: y, Phase: PhaseCancelled})
}

// InjectDrag queues a one-finger drag: press at from, steps linearly
// interpolated moves ending at to, then release at to. Minimum steps is 1.
func (c *Controller) InjectDrag(id ContactID, from, to Vec2, steps int) {
	if steps < 1 {
		steps = 1
	}
	c.InjectStart(id, from.X, from.Y)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.InjectMove(id, from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	c.InjectEnd(id, to.X, to.Y)
}

// InjectPinch queues a two-finger pinch along the horizontal axis through
// center. Contacts a and b start fromDist apart, their separation is
// interpolated to toDist over steps pairs of moves, then both are released.
func (c *Controller) InjectPinch(a, b ContactID, center Vec2, fromDist, toDist float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	half := fromDist / 2
	c.InjectStart(a, center.X-half, center.Y)
	c.InjectStart(b, center.X+half, center.Y)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		half = (fromDist + (toDist-fromDist)*t) / 2
		c.InjectMove(a, center.X-half, center.Y)
		c.InjectMove(b, center.X+half, center.Y)
	}
	c.InjectEnd(a, center.X-half, center.Y)
	c.InjectEnd(b, center.X+half, center.Y)
}

// Pending returns the number of queued synthetic events.
func (c *Controller) Pending() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
//
// Synthetic input takes over the recognizer: contacts the device still
// reports are cancelled first, and the device is not polled again until the
// queue is empty and every injected contact has been released.
func (c *Controller) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	if c.source.Live() > 0 {
		c.events = c.source.Cancel(c.events[:0])
		c.dispatchBatch(c.events)
		if len(c.injectQueue) == 0 {
			// A callback reset the view and dropped the queue.
			return true
		}
	}

	ev := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch ev.Phase {
	case PhaseStarted:
		c.injected[ev.ID] = struct{}{}
	case PhaseEnded, PhaseCancelled:
		delete(c.injected, ev.ID)
	}
	c.Dispatch(ev)
	return true
}
