// Package grasp recognizes touch gestures for [Ebitengine] games and other
// pointer-driven Go programs.
//
// Grasp provides swipe, pinch, long-press, pull-to-refresh, drag-to-dismiss,
// carousel, pinch-zoom, and long-press-menu recognizers, plus the event
// plumbing to drive them from a live input device, from injected synthetic
// touches, or from a JSON gesture script.
//
// # Quick start
//
// The simplest way to get started is a [Source], which polls Ebitengine's
// mouse and touch state every frame and routes events to attached
// recognizers:
//
//	src := grasp.NewSource()
//	swipe := grasp.NewSwipe()
//	swipe.OnLeft = func(e grasp.SwipeEvent) { log.Println("swiped left") }
//	src.Attach(swipe)
//
//	// in your ebiten.Game Update:
//	src.Update()
//
// For full control over time and events, feed a recognizer directly:
//
//	rec.HandleTouch(grasp.TouchEvent{ID: 1, Phase: grasp.PhaseBegin, X: 10, Y: 10, Time: t0})
//	rec.Update(t0.Add(16 * time.Millisecond))
//
// # Recognizers
//
// Every recognizer implements [Recognizer]: it consumes [TouchEvent] values
// through HandleTouch, advances deadlines and animations through Update, and
// reports back through callback fields ([Swipe.OnLeft], [Pinch.OnMove],
// [LongPress.OnLongPress], and so on). Recognizers never read the wall
// clock; time arrives on events and on Update, which makes them trivial to
// drive deterministically from tests and scripts.
//
// [PinchZoom] and [LongPressMenu] are composites built on [Pinch] and
// [LongPress]; feed them events and they feed their inner recognizers.
//
// # Tuning
//
// Thresholds ship with sensible defaults and can be overridden per field or
// loaded as a YAML [Profile]:
//
//	p, err := grasp.LoadProfileFile("touch.yaml")
//	if err != nil { ... }
//	p.Apply(swipe)
//
// # Scripts
//
// A [Script] replays a recorded gesture sequence against any sink on a
// virtual clock, which is how the package tests itself and how grasplab's
// replay mode works. See [ParseScript].
//
// [Ebitengine]: https://ebitengine.org
package grasp
