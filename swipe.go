package grasp

import (
	"math"
	"time"
)

// Swipe recognizer defaults.
const (
	DefaultSwipeThreshold         = 50.0 // px
	DefaultSwipeVelocityThreshold = 0.3  // px/ms
)

// SwipeEvent describes one completed swipe. Horizontal and Vertical are
// classified independently, so a diagonal flick carries both. Distance is the
// signed displacement from start to end; Velocity is the per-axis speed in
// px/ms, computed over Duration (floored to 1ms).
type SwipeEvent struct {
	Horizontal Direction
	Vertical   Direction
	Distance   Vec2
	Velocity   Vec2
	Duration   time.Duration
}

// Swipe detects single-finger directional swipes from the start and end
// samples of one contact. An axis gets a direction only when both the
// distance threshold and the velocity threshold are met on that axis, so a
// slow long drag and a fast short flick are both rejected.
//
// Configure fields after NewSwipe and before feeding events:
//
//	sw := grasp.NewSwipe()
//	sw.OnLeft = func(e grasp.SwipeEvent) { dismissCard() }
type Swipe struct {
	// Threshold is the minimum |displacement| in px an axis must cover.
	Threshold float64
	// VelocityThreshold is the minimum speed in px/ms an axis must reach.
	VelocityThreshold float64
	// PreventDefault makes HandleTouch claim the end event of a detected
	// swipe, telling the host to suppress its default reaction (scrolling).
	PreventDefault bool

	OnLeft  func(SwipeEvent)
	OnRight func(SwipeEvent)
	OnUp    func(SwipeEvent)
	OnDown  func(SwipeEvent)
	// OnSwipe fires after the directional callbacks whenever any axis
	// classified.
	OnSwipe func(SwipeEvent)

	tracking bool
	pointer  int
	start    TouchSample
}

var _ Recognizer = (*Swipe)(nil)

// NewSwipe returns a swipe recognizer with default thresholds.
func NewSwipe() *Swipe {
	return &Swipe{
		Threshold:         DefaultSwipeThreshold,
		VelocityThreshold: DefaultSwipeVelocityThreshold,
	}
}

// HandleTouch consumes one raw event. Classification happens on the end
// event; moves carry no information for this recognizer. Returns true only
// when PreventDefault is set and the end event completed a swipe.
func (s *Swipe) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		// First finger wins; a second contact is ignored until it ends.
		if s.tracking {
			return false
		}
		s.tracking = true
		s.pointer = ev.ID
		s.start = sampleOf(ev)
	case PhaseEnd:
		if !s.tracking || ev.ID != s.pointer {
			return false
		}
		e, ok := s.classify(sampleOf(ev))
		s.Reset()
		if !ok {
			return false
		}
		s.fire(e)
		return s.PreventDefault
	case PhaseCancel:
		if s.tracking && ev.ID == s.pointer {
			s.Reset()
		}
	}
	return false
}

// Update is a no-op; swipe classification holds no deadlines.
func (s *Swipe) Update(now time.Time) {}

// Reset clears the tracked start sample without firing callbacks.
func (s *Swipe) Reset() {
	s.tracking = false
	s.pointer = 0
	s.start = TouchSample{}
}

// classify derives the gesture data for a start/end pair and reports whether
// any axis met both thresholds.
func (s *Swipe) classify(end TouchSample) (SwipeEvent, bool) {
	delta := s.start.DeltaTo(end)
	dur := s.start.SpanTo(end)
	ms := float64(dur) / float64(time.Millisecond)

	e := SwipeEvent{
		Distance: delta,
		Velocity: Vec2{math.Abs(delta.X) / ms, math.Abs(delta.Y) / ms},
		Duration: dur,
	}
	if math.Abs(delta.X) >= s.Threshold && e.Velocity.X >= s.VelocityThreshold {
		if delta.X > 0 {
			e.Horizontal = DirectionRight
		} else {
			e.Horizontal = DirectionLeft
		}
	}
	if math.Abs(delta.Y) >= s.Threshold && e.Velocity.Y >= s.VelocityThreshold {
		if delta.Y > 0 {
			e.Vertical = DirectionDown
		} else {
			e.Vertical = DirectionUp
		}
	}
	return e, e.Horizontal != DirectionNone || e.Vertical != DirectionNone
}

// fire invokes the directional callbacks, most specific first, then the
// generic OnSwipe.
func (s *Swipe) fire(e SwipeEvent) {
	debugf("swipe %s/%s dist=(%.0f,%.0f) vel=(%.2f,%.2f) in %v",
		e.Horizontal, e.Vertical, e.Distance.X, e.Distance.Y,
		e.Velocity.X, e.Velocity.Y, e.Duration)
	switch e.Horizontal {
	case DirectionLeft:
		if s.OnLeft != nil {
			s.OnLeft(e)
		}
	case DirectionRight:
		if s.OnRight != nil {
			s.OnRight(e)
		}
	}
	switch e.Vertical {
	case DirectionUp:
		if s.OnUp != nil {
			s.OnUp(e)
		}
	case DirectionDown:
		if s.OnDown != nil {
			s.OnDown(e)
		}
	}
	if s.OnSwipe != nil {
		s.OnSwipe(e)
	}
}
