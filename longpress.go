package grasp

import (
	"math"
	"time"
)

// Long-press recognizer defaults.
const (
	DefaultLongPressThreshold     = 500 * time.Millisecond
	DefaultLongPressMoveThreshold = 10.0 // px
)

// LongPressEvent is produced exactly once per successful hold. Position is
// where the contact began; Duration is the elapsed hold time when the
// threshold was crossed.
type LongPressEvent struct {
	Position Vec2
	Duration time.Duration
}

// LongPress detects a sustained, low-movement single-finger press. The hold
// deadline is armed from the begin event's timestamp and checked in Update,
// so the host's tick cadence bounds fire latency. Movement past MoveThreshold
// on either axis cancels the hold; end and cancel both close the press and
// fire OnPressEnd exactly once per gesture, even after a successful fire.
type LongPress struct {
	// Threshold is how long the contact must hold before OnLongPress fires.
	Threshold time.Duration
	// MoveThreshold is the per-axis movement in px beyond which the hold
	// cancels.
	MoveThreshold float64

	OnLongPress  func(LongPressEvent)
	OnPressStart func()
	OnPressEnd   func()

	pressed  bool
	pointer  int
	start    TouchSample
	deadline time.Time // zero when disarmed; at most one pending per instance
}

var _ Recognizer = (*LongPress)(nil)

// NewLongPress returns a long-press recognizer with default thresholds.
func NewLongPress() *LongPress {
	return &LongPress{
		Threshold:     DefaultLongPressThreshold,
		MoveThreshold: DefaultLongPressMoveThreshold,
	}
}

// HandleTouch consumes one raw event. Always returns false; pressing claims
// no default actions.
func (l *LongPress) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		// A new contact supersedes whatever was tracked; the deadline is
		// re-armed before any callback runs, so the old one cannot fire late.
		l.pressed = true
		l.pointer = ev.ID
		l.start = sampleOf(ev)
		l.deadline = ev.Time.Add(l.Threshold)
		debugf("longpress start at (%.0f,%.0f)", ev.X, ev.Y)
		if l.OnPressStart != nil {
			l.OnPressStart()
		}
	case PhaseMove:
		if !l.pressed || ev.ID != l.pointer {
			return false
		}
		if math.Abs(ev.X-l.start.X) > l.MoveThreshold ||
			math.Abs(ev.Y-l.start.Y) > l.MoveThreshold {
			debugf("longpress cancelled by movement")
			l.close()
		}
	case PhaseEnd, PhaseCancel:
		// Idempotent: an already-closed press ignores further end/cancel
		// events, so OnPressEnd never fires twice for one gesture.
		if !l.pressed || ev.ID != l.pointer {
			return false
		}
		l.close()
	}
	return false
}

// Update fires OnLongPress once the armed deadline passes while the contact
// still holds.
func (l *LongPress) Update(now time.Time) {
	if l.deadline.IsZero() || !l.pressed || now.Before(l.deadline) {
		return
	}
	l.deadline = time.Time{}
	e := LongPressEvent{
		Position: Vec2{l.start.X, l.start.Y},
		Duration: now.Sub(l.start.Time),
	}
	debugf("longpress fired after %v", e.Duration)
	if l.OnLongPress != nil {
		l.OnLongPress(e)
	}
}

// Reset abandons the press and its deadline without firing callbacks.
func (l *LongPress) Reset() {
	l.pressed = false
	l.pointer = 0
	l.start = TouchSample{}
	l.deadline = time.Time{}
}

// Pressed reports whether a contact is currently held.
func (l *LongPress) Pressed() bool {
	return l.pressed
}

// close ends the press: deadline cleared, sample dropped, OnPressEnd fired.
func (l *LongPress) close() {
	l.deadline = time.Time{}
	l.pressed = false
	l.start = TouchSample{}
	if l.OnPressEnd != nil {
		l.OnPressEnd()
	}
}
