package gesture

import (
	"fmt"
	"os"
)

// debugRingSize is how many recent events debug mode keeps for diagnostics.
const debugRingSize = 16

// debugRing is a fixed-size history of the most recent events.
type debugRing struct {
	buf  [debugRingSize]TouchEvent
	next int
	n    int
}

func (r *debugRing) push(ev TouchEvent) {
	r.buf[r.next] = ev
	r.next = (r.next + 1) % debugRingSize
	if r.n < debugRingSize {
		r.n++
	}
}

// events returns the recorded events oldest first.
func (r *debugRing) events() []TouchEvent {
	out := make([]TouchEvent, 0, r.n)
	start := (r.next - r.n + debugRingSize) % debugRingSize
	for i := 0; i < r.n; i++ {
		out = append(out, r.buf[(start+i)%debugRingSize])
	}
	return out
}

// debugLogTransition prints a classification change to stderr.
func (c *Controller) debugLogTransition(from, to GestureState) {
	_, _ = fmt.Fprintf(os.Stderr, "[gesture] %s -> %s | contacts: %d | pan: (%d,%d) | zoom: %.3f\n",
		from, to, c.recognizer.ContactCount(),
		c.recognizer.Pan().X, c.recognizer.Pan().Y, c.recognizer.Zoom())
}

// debugOnPanic prints the recent event history when Dispatch panics, then
// re-panics with the original value. Deferred only in debug mode.
func (c *Controller) debugOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[gesture] fatal: %v\n", r)
	for i, ev := range c.recent.events() {
		_, _ = fmt.Fprintf(os.Stderr, "[gesture]   %2d: %-9s id=%d (%.1f, %.1f)\n",
			i, ev.Phase, ev.ID, ev.X, ev.Y)
	}
	panic(r)
}
