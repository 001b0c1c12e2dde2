package grasp

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settle animates one float value toward a target over a fixed duration.
// Controllers use it for snap-back and slide-out transitions. It advances on
// Update ticks, deriving the frame delta from consecutive now values, so it
// stays deterministic under scripted clocks.
type settle struct {
	tween    *gween.Tween
	value    float64
	lastTick time.Time
}

// start begins animating from from to to over d. Any animation in flight is
// replaced.
func (s *settle) start(from, to float64, d time.Duration, fn ease.TweenFunc) {
	s.value = from
	s.tween = gween.New(float32(from), float32(to), float32(d.Seconds()), fn)
	s.lastTick = time.Time{}
}

// set pins the value without animating.
func (s *settle) set(v float64) {
	s.tween = nil
	s.value = v
}

// step advances the animation to now. It reports true exactly once, on the
// tick the tween completes; an idle settle reports false.
func (s *settle) step(now time.Time) bool {
	if s.tween == nil {
		return false
	}
	var dt float32
	if !s.lastTick.IsZero() {
		dt = float32(now.Sub(s.lastTick).Seconds())
	}
	s.lastTick = now
	v, done := s.tween.Update(dt)
	s.value = float64(v)
	if done {
		s.tween = nil
	}
	return done
}

// active reports whether an animation is in flight.
func (s *settle) active() bool {
	return s.tween != nil
}

// stop abandons the animation, leaving the value where it is.
func (s *settle) stop() {
	s.tween = nil
}
