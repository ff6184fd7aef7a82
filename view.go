package gesture

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewAnim holds the active tweens of an AnimateTo call.
type viewAnim struct {
	panX, panY, zoom *gween.Tween
	done             [3]bool
}

// View is the transform gesture results are applied to: an absolute pan
// offset in screen pixels and a zoom factor about the viewport center.
type View struct {
	// Pan is the screen-space translation applied after zooming.
	Pan Point
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle the view renders into. Zoom
	// pivots around its center.
	Viewport Rect

	// MinZoom and MaxZoom clamp the displayed zoom. Zero disables a bound.
	// Clamping only affects the view; the recognizer keeps its own value.
	MinZoom, MaxZoom float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	anim *viewAnim
}

// NewView creates a View at the identity transform for the given viewport.
func NewView(viewport Rect) *View {
	return &View{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Apply updates the view from a recognizer result and reports whether a
// redraw should be scheduled, which is the case for every Pan or Zoom result.
// Results are ignored while an animation started by AnimateTo is running;
// the animation schedules its own redraws.
func (v *View) Apply(r Result) bool {
	if v.anim != nil {
		return false
	}
	switch r.Kind {
	case GesturePan:
		v.Pan = r.Pan
	case GestureZoom:
		v.Zoom = v.clampZoom(r.Zoom)
	default:
		return false
	}
	v.dirty = true
	return true
}

func (v *View) clampZoom(z float64) float64 {
	if v.MinZoom > 0 && z < v.MinZoom {
		z = v.MinZoom
	}
	if v.MaxZoom > 0 && z > v.MaxZoom {
		z = v.MaxZoom
	}
	return z
}

// AnimateTo tweens the view to the given pan and zoom over duration seconds.
func (v *View) AnimateTo(pan Point, zoom float64, duration float32, easeFn ease.TweenFunc) {
	v.anim = &viewAnim{
		panX: gween.New(float32(v.Pan.X), float32(pan.X), duration, easeFn),
		panY: gween.New(float32(v.Pan.Y), float32(pan.Y), duration, easeFn),
		zoom: gween.New(float32(v.Zoom), float32(zoom), duration, easeFn),
	}
}

// Animating reports whether an AnimateTo tween is still running.
func (v *View) Animating() bool {
	return v.anim != nil
}

// update advances the active animation. Returns true if the view changed.
func (v *View) update(dt float32) bool {
	if v.anim == nil {
		return false
	}
	prevPan, prevZoom := v.Pan, v.Zoom
	a := v.anim

	if !a.done[0] {
		val, done := a.panX.Update(dt)
		v.Pan.X = int(math.Round(float64(val)))
		a.done[0] = done
	}
	if !a.done[1] {
		val, done := a.panY.Update(dt)
		v.Pan.Y = int(math.Round(float64(val)))
		a.done[1] = done
	}
	if !a.done[2] {
		val, done := a.zoom.Update(dt)
		v.Zoom = float64(val)
		a.done[2] = done
	}
	if a.done[0] && a.done[1] && a.done[2] {
		v.anim = nil
	}

	if v.Pan != prevPan || v.Zoom != prevZoom {
		v.dirty = true
		return true
	}
	return false
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(Pan) * Translate(cx, cy) * Scale(Zoom) * Translate(-cx, -cy)
// where cx, cy = viewport center.
func (v *View) computeViewMatrix() [6]float64 {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false

	c := v.Viewport.Center()
	m := pivotZoomAffine(c.X, c.Y, v.Zoom, float64(v.Pan.X), float64(v.Pan.Y))

	v.viewMatrix = m
	v.invViewMatrix = invertPivotZoom(m)
	return m
}

// GeoM returns the view matrix as an ebiten.GeoM for DrawImageOptions.
func (v *View) GeoM() ebiten.GeoM {
	m := v.computeViewMatrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// WorldToScreen converts content coordinates to screen coordinates.
func (v *View) WorldToScreen(wx, wy float64) (sx, sy float64) {
	v.computeViewMatrix()
	sx, sy = transformPoint(v.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to content coordinates.
func (v *View) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.computeViewMatrix()
	wx, wy = transformPoint(v.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned rect of content visible through
// the viewport.
func (v *View) VisibleBounds() Rect {
	v.computeViewMatrix()
	inv := v.invViewMatrix

	x0, y0 := transformPoint(inv, v.Viewport.X, v.Viewport.Y)
	x1, y1 := transformPoint(inv, v.Viewport.X+v.Viewport.Width, v.Viewport.Y+v.Viewport.Height)

	return Rect{
		X: math.Min(x0, x1), Y: math.Min(y0, y1),
		Width: math.Abs(x1 - x0), Height: math.Abs(y1 - y0),
	}
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// modifying Pan, Zoom or Viewport directly.
func (v *View) MarkDirty() {
	v.dirty = true
}
