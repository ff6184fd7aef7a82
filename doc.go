// Package gesture recognizes one-finger pan and two-finger pinch-zoom
// gestures from raw multi-touch input, for [Ebitengine] programs that show a
// pannable, zoomable view.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you and hands your draw function the current view transform:
//
//	c := gesture.NewController(gesture.Config{})
//	gesture.Run(c, gesture.RunConfig{
//		Title: "Map", Width: 640, Height: 480,
//	}, func(screen *ebiten.Image, geom ebiten.GeoM) {
//		op := &ebiten.DrawImageOptions{}
//		op.GeoM.Concat(geom)
//		screen.DrawImage(world, op)
//	})
//
// For full control, implement [ebiten.Game] yourself, call
// [Controller.Update] from Update, and draw with [View.GeoM].
//
// # Recognition
//
// A [Recognizer] consumes [TouchEvent] values one at a time and reports a
// [Result]. Nothing is reported until every active contact has moved more
// than the move threshold (8 px by default) from where it was pressed. At
// that point one contact is classified as a pan and two as a zoom; three or
// more never classify. Pressing, lifting or cancelling any contact resets the
// classification, and the next gesture continues from the pan offset and
// zoom factor the previous one left behind.
//
// Events that break the contact lifecycle (a second press for a live id, a
// move or release for an unknown id) are programming errors and panic with a
// [*ProtocolError].
//
// # Input
//
// [TouchSource] turns Ebitengine's per-frame touch state into a
// lifecycle-correct event stream, optionally treating the left mouse button
// as a contact. Input can also be scripted: [Controller.InjectDrag],
// [Controller.InjectPinch] and [LoadScript] queue synthetic events that
// replay one per frame, which is handy for demos and tests.
//
// # Callbacks
//
// Register with [Controller.OnPan], [Controller.OnZoom] and
// [Controller.OnGestureChange]. Each returns a [CallbackHandle] whose Remove
// method unregisters it. An [EntityStore] receives the same updates as
// [GestureEvent] values; the Donburi adapter lives in gesture/ecs and a Gio
// pointer adapter in gesture/gioinput.
//
// # Debug mode
//
// [Controller.SetDebugMode] logs every classification change to stderr and,
// when a protocol violation panics, prints the most recent events first.
//
// [Ebitengine]: https://ebitengine.org
package gesture
