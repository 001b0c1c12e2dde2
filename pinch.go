package grasp

import (
	"math"
	"time"
)

// Pinch recognizer defaults.
const (
	DefaultPinchMinScale = 0.5
	DefaultPinchMaxScale = 3.0
)

// PinchEvent is one sample of an active pinch. Scale is the ratio of the
// current finger distance to the distance at pinch start, clamped to the
// recognizer's [MinScale, MaxScale]; it is never delivered unclamped. Center
// is the midpoint of the two contacts.
type PinchEvent struct {
	Scale  float64
	Center Vec2
}

// Pinch detects a two-finger pinch/zoom from the changing distance between
// exactly two contacts. OnMove is a continuous per-sample stream, not a single
// terminal value. Single-finger input is ignored entirely, and a third finger
// neither joins nor disturbs the active pair. When a finger lifts and presses
// again, the distance base is recomputed from the new pair.
type Pinch struct {
	MinScale float64
	MaxScale float64

	// OnStart fires once when both contacts are live, with Scale 1.
	OnStart func(PinchEvent)
	// OnMove fires for every move sample while both contacts are live.
	OnMove func(PinchEvent)
	// OnEnd fires when either contact lifts, with the last computed sample.
	OnEnd func(PinchEvent)

	touches  [2]pinchTouch
	count    int
	pinching bool
	baseDist float64
	last     PinchEvent
}

type pinchTouch struct {
	id   int
	x, y float64
}

var _ Recognizer = (*Pinch)(nil)

// NewPinch returns a pinch recognizer with the default scale limits.
func NewPinch() *Pinch {
	return &Pinch{
		MinScale: DefaultPinchMinScale,
		MaxScale: DefaultPinchMaxScale,
	}
}

// HandleTouch consumes one raw event. Always returns false; pinching claims
// no default actions.
func (p *Pinch) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		if p.count >= 2 || p.slotOf(ev.ID) >= 0 {
			return false
		}
		p.touches[p.count] = pinchTouch{id: ev.ID, x: ev.X, y: ev.Y}
		p.count++
		if p.count == 2 {
			p.tryStart()
		}
	case PhaseMove:
		i := p.slotOf(ev.ID)
		if i < 0 {
			return false
		}
		p.touches[i].x = ev.X
		p.touches[i].y = ev.Y
		if !p.pinching {
			// Two contacts that began at the same point get their
			// base distance from the first sample that separates them.
			if p.count == 2 {
				p.tryStart()
			}
			return false
		}
		p.last = p.sample()
		debugf("pinch move scale=%.3f center=(%.0f,%.0f)", p.last.Scale, p.last.Center.X, p.last.Center.Y)
		if p.OnMove != nil {
			p.OnMove(p.last)
		}
	case PhaseEnd, PhaseCancel:
		i := p.slotOf(ev.ID)
		if i < 0 {
			return false
		}
		wasPinching := p.pinching
		end := p.last
		p.pinching = false
		p.baseDist = 0
		// Compact so a surviving contact can pair with the next Begin.
		p.touches[0] = p.touches[1-i]
		p.count--
		if wasPinching {
			debugf("pinch end scale=%.3f", end.Scale)
			if p.OnEnd != nil {
				p.OnEnd(end)
			}
		}
	}
	return false
}

// Update is a no-op; pinch tracking holds no deadlines.
func (p *Pinch) Update(now time.Time) {}

// Reset drops both contacts and any active pinch without firing callbacks.
func (p *Pinch) Reset() {
	p.touches = [2]pinchTouch{}
	p.count = 0
	p.pinching = false
	p.baseDist = 0
	p.last = PinchEvent{}
}

// Pinching reports whether both contacts are live and tracking is active.
func (p *Pinch) Pinching() bool {
	return p.pinching
}

// slotOf returns the slot index tracking id, or -1.
func (p *Pinch) slotOf(id int) int {
	for i := 0; i < p.count; i++ {
		if p.touches[i].id == id {
			return i
		}
	}
	return -1
}

// tryStart begins pinch tracking once both contacts are distinct.
func (p *Pinch) tryStart() {
	d := p.distance()
	if d == 0 {
		return
	}
	p.pinching = true
	p.baseDist = d
	p.last = PinchEvent{Scale: clamp(1, p.MinScale, p.MaxScale), Center: p.center()}
	debugf("pinch start base=%.1f center=(%.0f,%.0f)", d, p.last.Center.X, p.last.Center.Y)
	if p.OnStart != nil {
		p.OnStart(p.last)
	}
}

// sample computes the clamped scale and center for the current contacts.
func (p *Pinch) sample() PinchEvent {
	return PinchEvent{
		Scale:  clamp(p.distance()/p.baseDist, p.MinScale, p.MaxScale),
		Center: p.center(),
	}
}

// distance returns the Euclidean distance between the two contacts.
func (p *Pinch) distance() float64 {
	return math.Hypot(p.touches[1].x-p.touches[0].x, p.touches[1].y-p.touches[0].y)
}

// center returns the midpoint of the two contacts.
func (p *Pinch) center() Vec2 {
	return Vec2{
		(p.touches[0].x + p.touches[1].x) / 2,
		(p.touches[0].y + p.touches[1].y) / 2,
	}
}
