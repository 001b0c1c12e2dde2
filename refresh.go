package grasp

import (
	"context"
	"time"
)

// Pull-to-refresh defaults.
const (
	DefaultPullThreshold = 80.0  // px of displayed distance to trigger
	DefaultMaxPull       = 150.0 // px cap on displayed distance
)

// pullResistance maps raw downward drag to displayed distance. Part of the
// feel; not configurable.
const pullResistance = 0.5

// PullToRefresh tracks a downward drag at the top of a scrollable region and
// runs an externally supplied refresh operation when the pull commits.
//
// The displayed distance follows min(delta*0.5, MaxPull) while pulling. A
// release at or past Threshold pins the distance at Threshold/2, runs Refresh
// on its own goroutine, and resets unconditionally once it settles: the
// refreshing flag clears even when Refresh returns an error. The error itself
// is the consumer's to surface; capture it in the Refresh closure.
//
// While a refresh is in flight, new pulls are suppressed. This is the only
// asynchronous path in the package.
type PullToRefresh struct {
	// Threshold is the displayed distance at which a release commits.
	Threshold float64
	// MaxPull caps the displayed distance.
	MaxPull float64
	// Disabled suppresses all tracking while set.
	Disabled bool
	// ScrollTop reports the wrapped container's scroll offset. Tracking
	// only begins while it returns exactly 0. A nil func is treated as
	// always at top.
	ScrollTop func() float64
	// Refresh is the asynchronous operation to run on commit. The context
	// is cancelled by Reset.
	Refresh func(ctx context.Context) error

	tracking   bool
	pointer    int
	startY     float64
	distance   float64
	refreshing bool
	done       chan error
	cancel     context.CancelFunc
}

var _ Recognizer = (*PullToRefresh)(nil)

// NewPullToRefresh returns a controller with default thresholds.
func NewPullToRefresh() *PullToRefresh {
	return &PullToRefresh{
		Threshold: DefaultPullThreshold,
		MaxPull:   DefaultMaxPull,
	}
}

// HandleTouch consumes one raw event. Always returns false; the pull itself
// never claims the event stream.
func (p *PullToRefresh) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		if p.tracking || p.Disabled || p.refreshing || p.scrollTop() != 0 {
			return false
		}
		p.tracking = true
		p.pointer = ev.ID
		p.startY = ev.Y
	case PhaseMove:
		if !p.tracking || ev.ID != p.pointer {
			return false
		}
		// Only downward movement updates the distance; the pull keeps its
		// last value while the finger drifts back up.
		if delta := ev.Y - p.startY; delta > 0 {
			p.distance = clamp(delta*pullResistance, 0, p.MaxPull)
		}
	case PhaseEnd:
		if !p.tracking || ev.ID != p.pointer {
			return false
		}
		p.tracking = false
		if p.distance >= p.Threshold && !p.refreshing && p.Refresh != nil {
			p.trigger()
		} else {
			p.distance = 0
		}
	case PhaseCancel:
		if !p.tracking || ev.ID != p.pointer {
			return false
		}
		// A cancelled pull never commits.
		p.tracking = false
		p.distance = 0
	}
	return false
}

// Update observes refresh completion. The goroutine only writes its buffered
// channel; all state changes happen here, on the event thread.
func (p *PullToRefresh) Update(now time.Time) {
	if p.done == nil {
		return
	}
	select {
	case err := <-p.done:
		if err != nil {
			debugf("refresh settled with error: %v", err)
		} else {
			debugf("refresh settled")
		}
		p.finish()
	default:
	}
}

// Reset abandons tracking and cancels any in-flight refresh context. The
// abandoned operation's result is discarded.
func (p *PullToRefresh) Reset() {
	p.tracking = false
	p.pointer = 0
	p.distance = 0
	p.refreshing = false
	p.done = nil
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Distance returns the displayed pull distance: live while pulling, pinned at
// Threshold/2 while refreshing, 0 otherwise.
func (p *PullToRefresh) Distance() float64 {
	return p.distance
}

// Refreshing reports whether the refresh operation is in flight.
func (p *PullToRefresh) Refreshing() bool {
	return p.refreshing
}

func (p *PullToRefresh) scrollTop() float64 {
	if p.ScrollTop == nil {
		return 0
	}
	return p.ScrollTop()
}

// trigger enters the refreshing state and launches the operation.
func (p *PullToRefresh) trigger() {
	p.refreshing = true
	p.distance = p.Threshold / 2
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	done := make(chan error, 1)
	p.done = done
	fn := p.Refresh
	debugf("refresh triggered")
	go func() {
		done <- fn(ctx)
	}()
}

// finish clears the refreshing state. Runs for success and failure alike.
func (p *PullToRefresh) finish() {
	p.refreshing = false
	p.distance = 0
	p.done = nil
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
