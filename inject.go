package grasp

import "time"

// injectFrame paces synthetic gestures when a helper has no explicit timing
// of its own, approximating one 60Hz frame.
const injectFrame = 16 * time.Millisecond

// queuedTouch is one scheduled synthetic event. Offsets are relative to the
// drain anchor, which is pinned to the clock when draining starts.
type queuedTouch struct {
	ev TouchEvent // Time is stamped at drain
	at time.Duration
}

// InjectTouch schedules one synthetic event at the current timeline cursor.
// Synthetic events flow through Dispatch exactly like polled input, as they
// come due during Update or Step. Helpers append sequentially; interleaving
// manual offsets out of order is not supported.
func (s *Source) InjectTouch(ev TouchEvent) {
	s.push(ev, s.queueCursor)
}

// InjectWait advances the timeline cursor without scheduling events, leaving
// a gap between gestures.
func (s *Source) InjectWait(d time.Duration) {
	s.queueCursor += d
}

// InjectTap schedules a press and a release one frame apart at (x, y).
func (s *Source) InjectTap(x, y float64) {
	id := s.nextSynthID()
	s.push(TouchEvent{ID: id, Phase: PhaseBegin, X: x, Y: y}, s.queueCursor)
	s.push(TouchEvent{ID: id, Phase: PhaseEnd, X: x, Y: y}, s.queueCursor+injectFrame)
	s.queueCursor += 2 * injectFrame
}

// InjectLongPress schedules a press held motionless for hold, then released.
func (s *Source) InjectLongPress(x, y float64, hold time.Duration) {
	id := s.nextSynthID()
	s.push(TouchEvent{ID: id, Phase: PhaseBegin, X: x, Y: y}, s.queueCursor)
	s.push(TouchEvent{ID: id, Phase: PhaseEnd, X: x, Y: y}, s.queueCursor+hold)
	s.queueCursor += hold + injectFrame
}

// InjectDrag schedules a drag from (x0, y0) to (x1, y1) over d, sampled with
// the given number of intermediate moves (floored at 1).
func (s *Source) InjectDrag(x0, y0, x1, y1 float64, d time.Duration, samples int) {
	if samples < 1 {
		samples = 1
	}
	id := s.nextSynthID()
	s.push(TouchEvent{ID: id, Phase: PhaseBegin, X: x0, Y: y0}, s.queueCursor)
	for i := 1; i <= samples; i++ {
		f := float64(i) / float64(samples)
		s.push(TouchEvent{
			ID:    id,
			Phase: PhaseMove,
			X:     x0 + (x1-x0)*f,
			Y:     y0 + (y1-y0)*f,
		}, s.queueCursor+time.Duration(f*float64(d)))
	}
	s.push(TouchEvent{ID: id, Phase: PhaseEnd, X: x1, Y: y1}, s.queueCursor+d)
	s.queueCursor += d + injectFrame
}

// InjectPinch schedules a two-finger pinch about (cx, cy), the fingers
// horizontal, moving from fromDist apart to toDist apart over d.
func (s *Source) InjectPinch(cx, cy, fromDist, toDist float64, d time.Duration, samples int) {
	if samples < 1 {
		samples = 1
	}
	a, b := s.nextSynthID(), s.nextSynthID()
	half := fromDist / 2
	s.push(TouchEvent{ID: a, Phase: PhaseBegin, X: cx - half, Y: cy}, s.queueCursor)
	s.push(TouchEvent{ID: b, Phase: PhaseBegin, X: cx + half, Y: cy}, s.queueCursor)
	for i := 1; i <= samples; i++ {
		f := float64(i) / float64(samples)
		half = (fromDist + (toDist-fromDist)*f) / 2
		at := s.queueCursor + time.Duration(f*float64(d))
		s.push(TouchEvent{ID: a, Phase: PhaseMove, X: cx - half, Y: cy}, at)
		s.push(TouchEvent{ID: b, Phase: PhaseMove, X: cx + half, Y: cy}, at)
	}
	s.push(TouchEvent{ID: a, Phase: PhaseEnd, X: cx - half, Y: cy}, s.queueCursor+d)
	s.push(TouchEvent{ID: b, Phase: PhaseEnd, X: cx + half, Y: cy}, s.queueCursor+d)
	s.queueCursor += d + injectFrame
}

// InjectPending returns how many scheduled events have not drained yet.
func (s *Source) InjectPending() int {
	return len(s.queue)
}

func (s *Source) push(ev TouchEvent, at time.Duration) {
	s.queue = append(s.queue, queuedTouch{ev: ev, at: at})
}

// nextSynthID allocates pointer IDs clear of the polled slot range so
// synthetic contacts never collide with live input.
func (s *Source) nextSynthID() int {
	s.synthID++
	return s.synthID
}

// drainQueue dispatches every scheduled event that has come due. The timeline
// anchors to the clock when draining starts and resets once the queue runs
// dry, so each injected batch plays from "now".
func (s *Source) drainQueue(now time.Time) {
	if len(s.queue) == 0 {
		s.queueAnchor = time.Time{}
		s.queueCursor = 0
		return
	}
	if s.queueAnchor.IsZero() {
		s.queueAnchor = now
	}
	for len(s.queue) > 0 {
		due := s.queueAnchor.Add(s.queue[0].at)
		if due.After(now) {
			return
		}
		ev := s.queue[0].ev
		ev.Time = due
		s.queue = s.queue[1:]
		s.Dispatch(ev)
	}
	s.queueAnchor = time.Time{}
	s.queueCursor = 0
}
