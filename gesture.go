package gesture

// Vec2 is a 2D vector used for contact positions and sub-pixel offsets.
type Vec2 struct {
	X, Y float64
}

// Point is an integer pixel offset. Pan results are always whole pixels.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ContactID identifies one touch contact. IDs are assigned by the input
// source and are unique among the contacts currently down.
type ContactID int

// MouseContactID is the contact a mouse button drives when touch emulation
// is enabled. Real touch IDs are never negative.
const MouseContactID ContactID = -1

// Phase is the lifecycle step a TouchEvent reports.
type Phase uint8

const (
	PhaseStarted   Phase = iota // contact pressed
	PhaseMoved                  // contact moved while pressed
	PhaseEnded                  // contact lifted
	PhaseCancelled              // contact withdrawn by the system
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "Started"
	case PhaseMoved:
		return "Moved"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Phase(?)"
	}
}

// TouchEvent is one raw contact event. Events for a given ID must arrive as
// exactly one Started, any number of Moved, then one Ended or Cancelled.
type TouchEvent struct {
	ID    ContactID
	X, Y  float64
	Phase Phase
}

// GestureState classifies the current multi-contact session.
type GestureState uint8

const (
	GestureNone GestureState = iota // nothing recognized
	GesturePan                      // one contact translating the view
	GestureZoom                     // two contacts scaling the view
)

func (g GestureState) String() string {
	switch g {
	case GestureNone:
		return "None"
	case GesturePan:
		return "Pan"
	case GestureZoom:
		return "Zoom"
	default:
		return "GestureState(?)"
	}
}

// Result is what the recognizer reports for a single event.
//
// Pan is meaningful only when Kind is GesturePan and Zoom only when Kind is
// GestureZoom. Both are absolute values, not deltas since the last event.
type Result struct {
	Kind GestureState
	Pan  Point
	Zoom float64
}

// IsNone reports whether the result carries no transform update.
func (r Result) IsNone() bool {
	return r.Kind == GestureNone
}

// PanResult builds a Pan result.
func PanResult(p Point) Result {
	return Result{Kind: GesturePan, Pan: p}
}

// ZoomResult builds a Zoom result.
func ZoomResult(factor float64) Result {
	return Result{Kind: GestureZoom, Zoom: factor}
}
