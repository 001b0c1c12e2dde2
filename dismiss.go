package grasp

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Drag-dismiss defaults.
const (
	DefaultDeleteThreshold  = 100.0 // px of leftward offset to commit
	DefaultSlideOutDistance = 500.0 // px the row travels off-screen on commit
)

// dismissOverdrag is how far past the threshold the row can be dragged. The
// clamp keeps the row from being pulled arbitrarily far while still giving
// visible give past the commit point.
const dismissOverdrag = 50.0

// dismissAnimDuration covers both the committed slide-out (after which the
// deletion callback fires) and the below-threshold snap-back.
const dismissAnimDuration = 300 * time.Millisecond

type dismissState uint8

const (
	dismissIdle     dismissState = iota
	dismissTracking              // finger down, offset following leftward drag
	dismissSnapping              // released below threshold, animating back to 0
	dismissSliding               // committed, animating off-screen
	dismissDone                  // deleted; inert until Reset
)

// DragDismiss converts a leftward single-finger drag into a translating
// offset with a delete threshold: release at or past the threshold slides the
// content off-screen and fires OnDelete once the slide settles; release short
// of it snaps the offset back to 0. Rightward drags are inert; this is a
// delete-by-swiping-left gesture only.
//
// After OnDelete the controller stays dismissed and ignores input until
// Reset, which rearms it for the next row.
type DragDismiss struct {
	// DeleteThreshold is the |offset| in px at which a release commits.
	DeleteThreshold float64
	// SlideOutDistance is how far off-screen the commit animation travels.
	SlideOutDistance float64

	// OnDelete fires once, when the committed slide-out settles.
	OnDelete func()
	// OnOffsetChange fires whenever the visible offset moves, during drags
	// and animations both. Hosts that poll Offset can leave it nil.
	OnOffsetChange func(offset float64)

	state   dismissState
	pointer int
	startX  float64
	offset  float64
	anim    settle
}

var _ Recognizer = (*DragDismiss)(nil)

// NewDragDismiss returns a controller with default thresholds.
func NewDragDismiss() *DragDismiss {
	return &DragDismiss{
		DeleteThreshold:  DefaultDeleteThreshold,
		SlideOutDistance: DefaultSlideOutDistance,
	}
}

// HandleTouch consumes one raw event. Always returns false; the drag claims
// no default actions.
func (d *DragDismiss) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		// A committed row is on its way out; nothing restarts it.
		if d.state == dismissSliding || d.state == dismissDone {
			return false
		}
		if d.state == dismissTracking {
			return false
		}
		d.anim.stop()
		d.state = dismissTracking
		d.pointer = ev.ID
		d.startX = ev.X
	case PhaseMove:
		if d.state != dismissTracking || ev.ID != d.pointer {
			return false
		}
		// Rightward deltas never move the content.
		if delta := ev.X - d.startX; delta < 0 {
			d.setOffset(clamp(delta, -(d.DeleteThreshold + dismissOverdrag), 0))
		}
	case PhaseEnd:
		if d.state != dismissTracking || ev.ID != d.pointer {
			return false
		}
		if -d.offset >= d.DeleteThreshold {
			d.state = dismissSliding
			d.anim.start(d.offset, -d.SlideOutDistance, dismissAnimDuration, ease.OutCubic)
			debugf("dismiss committed at offset %.0f", d.offset)
		} else if d.offset != 0 {
			d.state = dismissSnapping
			d.anim.start(d.offset, 0, dismissAnimDuration, ease.OutCubic)
		} else {
			d.state = dismissIdle
		}
	case PhaseCancel:
		if d.state != dismissTracking || ev.ID != d.pointer {
			return false
		}
		// Cancel never commits, regardless of offset.
		if d.offset != 0 {
			d.state = dismissSnapping
			d.anim.start(d.offset, 0, dismissAnimDuration, ease.OutCubic)
		} else {
			d.state = dismissIdle
		}
	}
	return false
}

// Update advances the snap-back and slide-out animations. OnDelete fires on
// the tick the slide-out settles.
func (d *DragDismiss) Update(now time.Time) {
	switch d.state {
	case dismissSnapping:
		done := d.anim.step(now)
		d.setOffset(d.anim.value)
		if done {
			d.state = dismissIdle
		}
	case dismissSliding:
		done := d.anim.step(now)
		d.setOffset(d.anim.value)
		if done {
			d.state = dismissDone
			debugf("dismiss settled, deleting")
			if d.OnDelete != nil {
				d.OnDelete()
			}
		}
	}
}

// Reset rearms the controller: offset cleared, animations dropped, input
// accepted again. No callbacks fire.
func (d *DragDismiss) Reset() {
	d.state = dismissIdle
	d.pointer = 0
	d.startX = 0
	d.offset = 0
	d.anim.stop()
}

// Offset returns the visible translate offset, always in
// [-(DeleteThreshold+50), 0] while interactive and heading off-screen after a
// commit.
func (d *DragDismiss) Offset() float64 {
	return d.offset
}

// Dismissed reports whether the content has been deleted and the controller
// is waiting for Reset.
func (d *DragDismiss) Dismissed() bool {
	return d.state == dismissDone
}

func (d *DragDismiss) setOffset(v float64) {
	if v == d.offset {
		return
	}
	d.offset = v
	if d.OnOffsetChange != nil {
		d.OnOffsetChange(v)
	}
}
