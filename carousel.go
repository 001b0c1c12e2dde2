package grasp

import "time"

// DefaultCarouselThreshold is the drag distance in px that commits a slide
// change on release.
const DefaultCarouselThreshold = 50.0

// Carousel converts a horizontal single-finger drag into paged slide
// navigation over a fixed-size item collection. The transient drag offset
// follows the finger; on release, a drag past Threshold commits one step in
// the dragged direction and the offset resets to 0. The index never leaves
// [0, len-1]: dragging right past the first slide or left past the last
// leaves it unchanged.
//
// Optional autoplay advances the index on a fixed interval, wrapping to 0
// past the end. It is suspended for the duration of any active drag and
// resumes from the release.
type Carousel struct {
	// Threshold is the drag distance in px that commits a slide change.
	Threshold float64
	// Autoplay is the interval between automatic advances; 0 disables.
	Autoplay time.Duration
	// OnChange fires on every index change: drag commit, autoplay step, or
	// programmatic navigation.
	OnChange func(index int)

	count    int
	index    int
	dragging bool
	pointer  int
	startX   float64
	dragX    float64
	nextAuto time.Time // zero while autoplay is idle or suspended
}

var _ Recognizer = (*Carousel)(nil)

// NewCarousel returns a controller over itemCount slides (floored at 1) with
// the default commit threshold and autoplay off.
func NewCarousel(itemCount int) *Carousel {
	if itemCount < 1 {
		itemCount = 1
	}
	return &Carousel{
		Threshold: DefaultCarouselThreshold,
		count:     itemCount,
	}
}

// HandleTouch consumes one raw event. Always returns false; carousel drags
// claim no default actions.
func (c *Carousel) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		if c.dragging {
			return false
		}
		c.dragging = true
		c.pointer = ev.ID
		c.startX = ev.X
		c.dragX = 0
		c.nextAuto = time.Time{} // suspend autoplay for the drag
	case PhaseMove:
		if !c.dragging || ev.ID != c.pointer {
			return false
		}
		c.dragX = ev.X - c.startX
	case PhaseEnd:
		if !c.dragging || ev.ID != c.pointer {
			return false
		}
		c.dragging = false
		if c.dragX > c.Threshold && c.index > 0 {
			c.setIndex(c.index - 1)
		} else if c.dragX < -c.Threshold && c.index < c.count-1 {
			c.setIndex(c.index + 1)
		}
		c.dragX = 0
	case PhaseCancel:
		if !c.dragging || ev.ID != c.pointer {
			return false
		}
		// An aborted drag never commits.
		c.dragging = false
		c.dragX = 0
	}
	return false
}

// Update advances the autoplay timer. The interval re-bases whenever autoplay
// resumes, so a drag release waits a full interval before the next step.
func (c *Carousel) Update(now time.Time) {
	if c.Autoplay <= 0 || c.dragging {
		return
	}
	if c.nextAuto.IsZero() {
		c.nextAuto = now.Add(c.Autoplay)
		return
	}
	if now.Before(c.nextAuto) {
		return
	}
	c.nextAuto = now.Add(c.Autoplay)
	c.setIndex((c.index + 1) % c.count)
}

// Reset abandons any active drag and suspends the autoplay deadline until the
// next Update. The index is kept; use GoTo to change it.
func (c *Carousel) Reset() {
	c.dragging = false
	c.pointer = 0
	c.startX = 0
	c.dragX = 0
	c.nextAuto = time.Time{}
}

// Index returns the current slide index.
func (c *Carousel) Index() int {
	return c.index
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	return c.count
}

// DragOffset returns the live drag offset in px, 0 while no drag is active.
func (c *Carousel) DragOffset() float64 {
	return c.dragX
}

// Dragging reports whether a drag is in progress.
func (c *Carousel) Dragging() bool {
	return c.dragging
}

// Next advances one slide, clamped at the end (no wrap).
func (c *Carousel) Next() {
	c.setIndex(c.index + 1)
}

// Prev steps back one slide, clamped at the start.
func (c *Carousel) Prev() {
	c.setIndex(c.index - 1)
}

// GoTo jumps to slide i, clamped to [0, Len()-1].
func (c *Carousel) GoTo(i int) {
	c.setIndex(i)
}

func (c *Carousel) setIndex(i int) {
	i = clampIndex(i, c.count)
	if i == c.index {
		return
	}
	c.index = i
	debugf("carousel index -> %d", i)
	if c.OnChange != nil {
		c.OnChange(i)
	}
}
