package grasp

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Pinch-zoom defaults.
const (
	DefaultDoubleTapScale  = 2.0
	DefaultDoubleTapWindow = 300 * time.Millisecond
	DefaultRestScale       = 1.0
)

// zoomSettleDuration covers the snap-back and double-tap transitions.
const zoomSettleDuration = 250 * time.Millisecond

// PinchZoom drives an image's scale and translate from a composed Pinch plus
// a double-tap detector. Pinching rescales about the running zoom; releasing
// a pinch below RestScale snaps scale and offset back to rest. While zoomed
// past rest, a single-finger drag pans the offset.
//
// The double-tap detector is a separate timing recognizer layered beside the
// pinch math: two taps (releases of the last finger) within DoubleTapWindow
// toggle between rest and DoubleTapScale, animated.
type PinchZoom struct {
	// Pinch is the inner recognizer. Its MinScale and MaxScale double as
	// the absolute zoom limits.
	Pinch *Pinch
	// DoubleTapScale is the zoom a double-tap toggles in.
	DoubleTapScale float64
	// DoubleTapWindow is the maximum gap between the two taps.
	DoubleTapWindow time.Duration
	// RestScale is the resting zoom; pinches released below it snap back.
	RestScale float64
	// OnChange fires whenever scale or offset move: pinch samples, pan
	// moves, and animation steps.
	OnChange func(scale float64, offset Vec2)

	zoom      float64
	offset    Vec2
	startZoom float64
	down      int // fingers currently in contact
	panning   bool
	panPtr    int
	panStart  Vec2
	panBase   Vec2
	lastTap   time.Time // previous tap release; zero when no candidate
	zoomAnim  settle
	oxAnim    settle
	oyAnim    settle
}

var _ Recognizer = (*PinchZoom)(nil)

// NewPinchZoom returns a controller at rest scale with default tap and limit
// settings.
func NewPinchZoom() *PinchZoom {
	pz := &PinchZoom{
		Pinch:           NewPinch(),
		DoubleTapScale:  DefaultDoubleTapScale,
		DoubleTapWindow: DefaultDoubleTapWindow,
		RestScale:       DefaultRestScale,
		zoom:            DefaultRestScale,
	}
	pz.Pinch.OnStart = func(PinchEvent) {
		pz.stopAnims()
		pz.startZoom = pz.zoom
		pz.panning = false
	}
	pz.Pinch.OnMove = func(e PinchEvent) {
		pz.setZoom(clamp(pz.startZoom*e.Scale, pz.Pinch.MinScale, pz.Pinch.MaxScale))
	}
	pz.Pinch.OnEnd = func(PinchEvent) {
		if pz.zoom < pz.RestScale {
			pz.snapToRest()
		}
	}
	return pz
}

// HandleTouch feeds the inner pinch, the pan tracker, and the double-tap
// window. Always returns false.
func (pz *PinchZoom) HandleTouch(ev TouchEvent) bool {
	pz.Pinch.HandleTouch(ev)

	switch ev.Phase {
	case PhaseBegin:
		pz.down++
		pz.stopAnims()
		if pz.Pinch.Pinching() {
			pz.panning = false
			return false
		}
		if pz.zoom > pz.RestScale {
			pz.panning = true
			pz.panPtr = ev.ID
			pz.panStart = ev.Pos()
			pz.panBase = pz.offset
		}
	case PhaseMove:
		if !pz.panning || ev.ID != pz.panPtr {
			return false
		}
		pz.setOffset(Vec2{
			pz.panBase.X + ev.X - pz.panStart.X,
			pz.panBase.Y + ev.Y - pz.panStart.Y,
		})
	case PhaseEnd:
		if pz.down > 0 {
			pz.down--
		}
		if pz.panning && ev.ID == pz.panPtr {
			pz.panning = false
		}
		// Only the release of the last finger counts as a tap, so the
		// two lifts of a pinch feed at most one sample into the window.
		if pz.down == 0 {
			pz.tap(ev.Time)
		}
	case PhaseCancel:
		if pz.down > 0 {
			pz.down--
		}
		if pz.panning && ev.ID == pz.panPtr {
			pz.panning = false
		}
	}
	return false
}

// Update advances the snap-back and double-tap animations.
func (pz *PinchZoom) Update(now time.Time) {
	pz.Pinch.Update(now)
	if !pz.zoomAnim.active() && !pz.oxAnim.active() && !pz.oyAnim.active() {
		return
	}
	pz.zoomAnim.step(now)
	pz.oxAnim.step(now)
	pz.oyAnim.step(now)
	pz.zoom = pz.zoomAnim.value
	pz.offset = Vec2{pz.oxAnim.value, pz.oyAnim.value}
	pz.changed()
}

// Reset returns the view to rest scale and zero offset without firing
// callbacks, dropping any contacts and the tap window.
func (pz *PinchZoom) Reset() {
	pz.Pinch.Reset()
	pz.zoom = pz.RestScale
	pz.offset = Vec2{}
	pz.startZoom = 0
	pz.down = 0
	pz.panning = false
	pz.lastTap = time.Time{}
	pz.stopAnims()
}

// Scale returns the current zoom.
func (pz *PinchZoom) Scale() float64 {
	return pz.zoom
}

// Offset returns the current translate offset.
func (pz *PinchZoom) Offset() Vec2 {
	return pz.offset
}

// tap feeds one release into the double-tap window and toggles the zoom when
// it completes a pair.
func (pz *PinchZoom) tap(at time.Time) {
	if !pz.lastTap.IsZero() && at.Sub(pz.lastTap) <= pz.DoubleTapWindow {
		pz.lastTap = time.Time{} // the pair is spent
		pz.toggle()
		return
	}
	pz.lastTap = at
}

// toggle animates to DoubleTapScale from rest, or back to rest from anywhere
// else. The offset re-centers in both directions.
func (pz *PinchZoom) toggle() {
	target := pz.DoubleTapScale
	if pz.zoom != pz.RestScale {
		target = pz.RestScale
	}
	debugf("double-tap toggle %.2f -> %.2f", pz.zoom, target)
	pz.zoomAnim.start(pz.zoom, target, zoomSettleDuration, ease.OutCubic)
	pz.oxAnim.start(pz.offset.X, 0, zoomSettleDuration, ease.OutCubic)
	pz.oyAnim.start(pz.offset.Y, 0, zoomSettleDuration, ease.OutCubic)
}

// snapToRest animates scale and offset back to the resting state.
func (pz *PinchZoom) snapToRest() {
	debugf("zoom snap-back from %.2f", pz.zoom)
	pz.zoomAnim.start(pz.zoom, pz.RestScale, zoomSettleDuration, ease.OutCubic)
	pz.oxAnim.start(pz.offset.X, 0, zoomSettleDuration, ease.OutCubic)
	pz.oyAnim.start(pz.offset.Y, 0, zoomSettleDuration, ease.OutCubic)
}

func (pz *PinchZoom) stopAnims() {
	pz.zoomAnim.stop()
	pz.oxAnim.stop()
	pz.oyAnim.stop()
}

func (pz *PinchZoom) setZoom(v float64) {
	if v == pz.zoom {
		return
	}
	pz.zoom = v
	pz.changed()
}

func (pz *PinchZoom) setOffset(v Vec2) {
	if v == pz.offset {
		return
	}
	pz.offset = v
	pz.changed()
}

func (pz *PinchZoom) changed() {
	if pz.OnChange != nil {
		pz.OnChange(pz.zoom, pz.offset)
	}
}
