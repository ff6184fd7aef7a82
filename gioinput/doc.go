// Package gioinput feeds Gio pointer events into a gesture recognizer.
//
// Gio delivers pointer input as a stream of [pointer.Event] values rather
// than a pollable device state, so it cannot back a gesture.Poller. A
// [Translator] instead converts each event into zero or more
// gesture.TouchEvent values as it arrives:
//
//	var tr gioinput.Translator
//	for _, ev := range gtx.Events(tag) {
//		if pe, ok := ev.(pointer.Event); ok {
//			tr.Feed(controller.Dispatch, pe)
//		}
//	}
//
// Touch pointers map one-to-one onto contacts. Mouse pointers are ignored
// unless EmulateTouchWithMouse is set, in which case the primary mouse
// button drives gesture.MouseContactID.
package gioinput
