package grasp

import (
	"math"
	"testing"
)

func TestDismissTracksLeftwardDrag(t *testing.T) {
	d := NewDragDismiss()
	var offsets []float64
	d.OnOffsetChange = func(v float64) { offsets = append(offsets, v) }

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 260, 50, 30))
	d.HandleTouch(tev(1, PhaseMove, 220, 50, 60))

	if d.Offset() != -80 {
		t.Errorf("offset = %v, want -80", d.Offset())
	}
	if len(offsets) != 2 || offsets[0] != -40 || offsets[1] != -80 {
		t.Errorf("offset stream = %v, want [-40 -80]", offsets)
	}
}

func TestDismissRightwardDragInert(t *testing.T) {
	d := NewDragDismiss()

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 400, 50, 30))
	if d.Offset() != 0 {
		t.Errorf("offset = %v, rightward drags should not move the content", d.Offset())
	}
}

func TestDismissOverdragClamp(t *testing.T) {
	d := NewDragDismiss()

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 50, 50, 30)) // 250px left
	want := -(DefaultDeleteThreshold + 50)
	if d.Offset() != want {
		t.Errorf("offset = %v, want clamped %v", d.Offset(), want)
	}
}

func TestDismissSnapBackBelowThreshold(t *testing.T) {
	d := NewDragDismiss()
	deleted := false
	d.OnDelete = func() { deleted = true }

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 260, 50, 30)) // -40, short of 100
	d.HandleTouch(tev(1, PhaseEnd, 260, 50, 60))

	tick(d, 60, 450)
	if d.Offset() != 0 {
		t.Errorf("offset = %v, want snapped back to 0", d.Offset())
	}
	if deleted {
		t.Error("release below threshold must not delete")
	}
	if d.Dismissed() {
		t.Error("controller should not report dismissed")
	}
}

func TestDismissCommitSlidesOutThenDeletes(t *testing.T) {
	d := NewDragDismiss()
	deletes := 0
	d.OnDelete = func() { deletes++ }

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 180, 50, 30)) // -120, past 100
	d.HandleTouch(tev(1, PhaseEnd, 180, 50, 60))

	// Deletion fires when the slide settles, not at release.
	d.Update(at(60))
	if deletes != 0 {
		t.Fatal("OnDelete must wait for the slide-out to settle")
	}

	tick(d, 60, 450)
	if deletes != 1 {
		t.Fatalf("expected exactly 1 delete, got %d", deletes)
	}
	if !d.Dismissed() {
		t.Error("controller should report dismissed")
	}
	if math.Abs(d.Offset()-(-DefaultSlideOutDistance)) > 0.5 {
		t.Errorf("offset = %v, want ~%v", d.Offset(), -DefaultSlideOutDistance)
	}

	// Further ticks never refire.
	tick(d, 450, 900)
	if deletes != 1 {
		t.Errorf("delete fired %d times, want 1", deletes)
	}
}

func TestDismissCancelNeverCommits(t *testing.T) {
	d := NewDragDismiss()
	deleted := false
	d.OnDelete = func() { deleted = true }

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 150, 50, 30)) // past threshold
	d.HandleTouch(tev(1, PhaseCancel, 150, 50, 60))

	tick(d, 60, 450)
	if deleted {
		t.Error("cancel must snap back even past the threshold")
	}
	if d.Offset() != 0 {
		t.Errorf("offset = %v, want 0 after cancelled snap-back", d.Offset())
	}
}

func TestDismissedStateInertUntilReset(t *testing.T) {
	d := NewDragDismiss()
	d.OnDelete = func() {}

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 150, 50, 30))
	d.HandleTouch(tev(1, PhaseEnd, 150, 50, 60))
	tick(d, 60, 450)
	if !d.Dismissed() {
		t.Fatal("expected dismissed")
	}

	// New touches bounce off the dismissed controller.
	d.HandleTouch(tev(2, PhaseBegin, 300, 50, 500))
	d.HandleTouch(tev(2, PhaseMove, 200, 50, 530))
	if math.Abs(d.Offset()-(-DefaultSlideOutDistance)) > 0.5 {
		t.Error("dismissed content should not move")
	}

	// Reset rearms for the next row.
	d.Reset()
	if d.Dismissed() || d.Offset() != 0 {
		t.Error("reset should rearm the controller")
	}
	d.HandleTouch(tev(3, PhaseBegin, 300, 50, 600))
	d.HandleTouch(tev(3, PhaseMove, 260, 50, 630))
	if d.Offset() != -40 {
		t.Errorf("offset = %v, want -40 after rearm", d.Offset())
	}
}

func TestDismissGrabDuringSnapBack(t *testing.T) {
	d := NewDragDismiss()

	d.HandleTouch(tev(1, PhaseBegin, 300, 50, 0))
	d.HandleTouch(tev(1, PhaseMove, 240, 50, 30))
	d.HandleTouch(tev(1, PhaseEnd, 240, 50, 60))

	// Partway through the snap-back, the finger grabs the row again.
	d.Update(at(60))
	d.Update(at(140))
	mid := d.Offset()
	if mid == 0 || mid == -60 {
		t.Fatalf("offset = %v, expected mid-animation value", mid)
	}

	// The grab freezes the animation where it was.
	d.HandleTouch(tev(2, PhaseBegin, 200, 50, 150))
	d.Update(at(160))
	if d.Offset() != mid {
		t.Errorf("offset = %v, want frozen at %v", d.Offset(), mid)
	}

	// The new drag owns the offset from its own start.
	d.HandleTouch(tev(2, PhaseMove, 190, 50, 180))
	if d.Offset() != -10 {
		t.Errorf("offset = %v, want -10", d.Offset())
	}
}
