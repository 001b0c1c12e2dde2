package grasp

import (
	"time"

	"golang.org/x/mobile/event/touch"
)

// FromMobileTouch converts a golang.org/x/mobile touch event into a
// TouchEvent, for hosts running on the shiny/mobile event loop. Sequences map
// to pointer IDs 1 and up, keeping 0 for a mouse by the same convention the
// Ebitengine source uses. x/mobile has no cancel type; unknown types are
// treated as cancels so stray contacts abort rather than commit.
func FromMobileTouch(e touch.Event, at time.Time) TouchEvent {
	var phase Phase
	switch e.Type {
	case touch.TypeBegin:
		phase = PhaseBegin
	case touch.TypeMove:
		phase = PhaseMove
	case touch.TypeEnd:
		phase = PhaseEnd
	default:
		phase = PhaseCancel
	}
	return TouchEvent{
		ID:    int(e.Sequence) + 1,
		Phase: phase,
		X:     float64(e.X),
		Y:     float64(e.Y),
		Time:  at,
	}
}
