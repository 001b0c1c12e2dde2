package grasp

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxPointers bounds the live pointers a Source polls: pointer 0 is the
// mouse, 1-9 are touch slots.
const maxPointers = 10

// pointerState tracks one polled pointer between ticks.
type pointerState struct {
	down bool
	x, y float64
}

// Source polls Ebitengine input once per tick, converts it into TouchEvents,
// and routes them to attached recognizers. The mouse left button acts as
// pointer 0 so every gesture stays exercisable on desktop; touches map to
// stable slots 1-9 for the lifetime of each contact.
//
// Routing uses capture: a begin event is delivered to every attachment whose
// bounds contain it (zero bounds match everywhere), and those attachments
// then receive every later event of that pointer regardless of where it
// wanders, so a drag that leaves the element still finishes its gesture.
// Claims are ORed together and returned from Dispatch; the Source itself
// never arbitrates between attachments.
//
// Headless hosts skip Update and drive Dispatch plus Step directly.
type Source struct {
	attachments []*Attachment
	captures    map[int][]*Attachment

	transform    Affine
	hasTransform bool

	pointers     [maxPointers]pointerState
	touchUsed    [maxPointers]bool
	touchMap     [maxPointers]ebiten.TouchID
	prevTouchIDs []ebiten.TouchID

	queue       []queuedTouch
	queueAnchor time.Time
	queueCursor time.Duration
	synthID     int
}

// Attachment binds one recognizer to a Source. The zero bounds cover the
// whole surface; SetBounds narrows where the recognizer's gestures may begin.
type Attachment struct {
	src     *Source
	rec     Recognizer
	bounds  Rect
	removed bool
}

// NewSource returns an empty source with the identity transform.
func NewSource() *Source {
	return &Source{
		captures: make(map[int][]*Attachment),
		synthID:  100,
	}
}

// Attach registers a recognizer for routing and returns its handle.
func (s *Source) Attach(r Recognizer) *Attachment {
	a := &Attachment{src: s, rec: r}
	s.attachments = append(s.attachments, a)
	return a
}

// SetTransform sets the screen-to-surface matrix applied to every event's
// coordinates before routing. Hosts that draw their content through a
// transform pass that matrix's Invert here.
func (s *Source) SetTransform(m Affine) {
	s.transform = m
	s.hasTransform = m != IdentityAffine()
}

// Update polls mouse and touch state, drains due injected events, and ticks
// every attached recognizer, all stamped with the same clock reading.
func (s *Source) Update() {
	now := time.Now()
	s.pollMouse(now)
	s.pollTouches(now)
	s.Step(now)
}

// Step drains injected events that have come due and ticks every attached
// recognizer. The headless counterpart of Update.
func (s *Source) Step(now time.Time) {
	s.drainQueue(now)
	for _, a := range s.attachments {
		if !a.removed {
			a.rec.Update(now)
		}
	}
}

// Dispatch maps one raw event through the source transform and routes it.
// Returns whether any recognizer claimed it.
func (s *Source) Dispatch(ev TouchEvent) bool {
	if s.hasTransform {
		ev.X, ev.Y = s.transform.Apply(ev.X, ev.Y)
	}
	claimed := false
	switch ev.Phase {
	case PhaseBegin:
		var targets []*Attachment
		for _, a := range s.attachments {
			if a.removed {
				continue
			}
			if a.bounds.IsZero() || a.bounds.Contains(ev.X, ev.Y) {
				targets = append(targets, a)
			}
		}
		s.captures[ev.ID] = targets
		claimed = deliver(targets, ev)
	case PhaseMove:
		claimed = deliver(s.captures[ev.ID], ev)
	case PhaseEnd, PhaseCancel:
		targets := s.captures[ev.ID]
		delete(s.captures, ev.ID)
		claimed = deliver(targets, ev)
	}
	return claimed
}

// deliver feeds ev to each live attachment and ORs the claims.
func deliver(targets []*Attachment, ev TouchEvent) bool {
	claimed := false
	for _, a := range targets {
		if a.removed {
			continue
		}
		if a.rec.HandleTouch(ev) {
			claimed = true
		}
	}
	return claimed
}

// pollMouse feeds pointer 0 from the left mouse button.
func (s *Source) pollMouse(now time.Time) {
	mx, my := ebiten.CursorPosition()
	s.step(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), now)
}

// pollTouches feeds pointers 1-9 from the touch state, keeping slot
// assignments stable per contact and synthesizing end events at the last
// known position when a contact disappears.
func (s *Source) pollTouches(now time.Time) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.step(slot, float64(tx), float64(ty), true, now)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.step(i, ps.x, ps.y, false, now)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), allocating one
// for new contacts. Returns -1 when all slots are taken.
func (s *Source) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// step derives Begin/Move/End transitions for one pointer from its polled
// state and dispatches them.
func (s *Source) step(id int, x, y float64, down bool, now time.Time) {
	ps := &s.pointers[id]
	switch {
	case down && !ps.down:
		ps.down, ps.x, ps.y = true, x, y
		s.Dispatch(TouchEvent{ID: id, Phase: PhaseBegin, X: x, Y: y, Time: now})
	case down && ps.down:
		if x == ps.x && y == ps.y {
			return
		}
		ps.x, ps.y = x, y
		s.Dispatch(TouchEvent{ID: id, Phase: PhaseMove, X: x, Y: y, Time: now})
	case !down && ps.down:
		ps.down = false
		s.Dispatch(TouchEvent{ID: id, Phase: PhaseEnd, X: x, Y: y, Time: now})
	}
}

// SetBounds narrows where this attachment's gestures may begin. The zero
// Rect restores whole-surface routing. Bounds are in surface coordinates
// (after the source transform).
func (a *Attachment) SetBounds(r Rect) {
	a.bounds = r
}

// Bounds returns the attachment's begin bounds.
func (a *Attachment) Bounds() Rect {
	return a.bounds
}

// Remove detaches the recognizer and resets it. Events already captured stop
// flowing immediately; removing twice is harmless.
func (a *Attachment) Remove() {
	if a.removed {
		return
	}
	a.removed = true
	src := a.src
	kept := src.attachments[:0]
	for _, other := range src.attachments {
		if other != a {
			kept = append(kept, other)
		}
	}
	src.attachments = kept
	a.rec.Reset()
}
