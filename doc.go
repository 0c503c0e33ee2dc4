// Package tactile is a gesture recognition engine for interactive surfaces.
//
// Tactile converts raw pointer, touch, or mouse event streams into a small
// set of semantic gesture events — tap (with consecutive-tap counting),
// swipe with a cardinal direction, long-press, pan, pinch, and rotate — that
// UI components subscribe to. It renders nothing and decides nothing: the
// consumer registers handlers on a target surface and reacts to the typed
// events.
//
// # Quick start
//
// Create a [Manager] bound to a [Surface] and register handlers:
//
//	mgr, err := tactile.New(surface, nil)
//	if err != nil {
//		return err
//	}
//	mgr.OnTap(func(e *tactile.TapEvent) {
//		if e.Count == 2 {
//			// double tap
//		}
//	})
//	mgr.OnSwipeDirection(tactile.DirectionLeft, func(e *tactile.SwipeEvent) {
//		// dismiss
//	})
//	defer mgr.Destroy()
//
// The manager picks exactly one native event family from the surface's
// capabilities (pointer preferred, then touch, then mouse) and binds
// start/move/end/cancel listeners. [Manager.Disable] unbinds them without
// losing configuration or handlers; [Manager.Destroy] is terminal.
//
// # Surfaces
//
// Any type implementing [Surface] can deliver events. Two implementations
// ship with the package: [EbitenSurface] polls Ebitengine mouse and touch
// state once per game tick, and [SyntheticSurface] is driven
// programmatically, for tests and for replaying [Script] stroke recordings.
//
// # Thresholds
//
// All recognition thresholds live in [Config] and default to
// [DefaultConfig]: 30 px / 300 ms swipes, a 500 ms long-press, a 10 px tap
// dead zone, and 10 px / 10° pinch and rotate sensitivity.
package tactile
