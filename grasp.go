package grasp

import "time"

// Vec2 is a 2D vector used for positions, offsets, deltas, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. A zero Rect is treated as
// unbounded by the routing layer.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Phase identifies where a touch event falls in a pointer's contact lifetime.
type Phase uint8

const (
	PhaseBegin  Phase = iota // finger or button makes contact
	PhaseMove                // contact point moved
	PhaseEnd                 // contact lifted normally
	PhaseCancel              // contact aborted by the platform (palm rejection, focus loss)
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent is one raw pointer sample. IDs are stable for the lifetime of a
// contact: the Ebitengine source maps the mouse to ID 0 and touches to 1 and
// up. Time is the moment the sample was taken; recognizers derive every
// deadline and velocity from event times rather than reading the clock.
type TouchEvent struct {
	ID    int
	Phase Phase
	X, Y  float64
	Time  time.Time
}

// Pos returns the event position as a Vec2.
func (ev TouchEvent) Pos() Vec2 {
	return Vec2{ev.X, ev.Y}
}

// minGestureSpan floors gesture durations so velocity math never divides by
// zero when start and end land on the same clock reading.
const minGestureSpan = time.Millisecond

// TouchSample is a position captured together with its timestamp at a gesture
// boundary. Each recognizer records at most one per tracked pointer and clears
// it when the gesture ends or cancels.
type TouchSample struct {
	X, Y float64
	Time time.Time
}

// sampleOf captures the position and time of a touch event.
func sampleOf(ev TouchEvent) TouchSample {
	return TouchSample{X: ev.X, Y: ev.Y, Time: ev.Time}
}

// DeltaTo returns the displacement from s to other.
func (s TouchSample) DeltaTo(other TouchSample) Vec2 {
	return Vec2{other.X - s.X, other.Y - s.Y}
}

// SpanTo returns the elapsed time from s to other, floored to 1ms.
func (s TouchSample) SpanTo(other TouchSample) time.Duration {
	d := other.Time.Sub(s.Time)
	if d < minGestureSpan {
		return minGestureSpan
	}
	return d
}

// Direction classifies movement along one axis of a swipe.
type Direction uint8

const (
	DirectionNone  Direction = iota // no direction met both thresholds
	DirectionLeft                   // negative X
	DirectionRight                  // positive X
	DirectionUp                     // negative Y
	DirectionDown                   // positive Y
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Recognizer is the contract shared by every gesture recognizer and
// controller in the package.
//
// HandleTouch consumes one raw event and returns whether the recognizer
// claimed it; a claim means the host should suppress its own default
// reaction to the event (scrolling, selection). Only recognizers configured
// to prevent defaults ever claim.
//
// Update advances time-based state (hold deadlines, autoplay intervals,
// settle animations) to now. Hosts call it once per tick with the same clock
// that stamps their events. A recognizer owns at most one pending deadline and
// clears it on every exit path, so nothing fires into torn-down state.
//
// Reset abandons any in-flight gesture and pending deadline without firing
// callbacks. Detaching a recognizer resets it.
type Recognizer interface {
	HandleTouch(ev TouchEvent) bool
	Update(now time.Time)
	Reset()
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampIndex limits i to [0, n-1]. n must be positive.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
