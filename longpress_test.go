package grasp

import "testing"

func TestLongPressFires(t *testing.T) {
	l := NewLongPress()
	var got LongPressEvent
	fired := 0
	l.OnLongPress = func(e LongPressEvent) { got = e; fired++ }

	l.HandleTouch(tev(1, PhaseBegin, 40, 60, 0))

	// Ticks before the threshold do nothing.
	tick(l, 0, 480)
	if fired != 0 {
		t.Fatal("should not fire before the threshold")
	}

	l.Update(at(512))
	if fired != 1 {
		t.Fatalf("expected 1 fire, got %d", fired)
	}
	if got.Position != (Vec2{40, 60}) {
		t.Errorf("position = %+v, want press origin {40 60}", got.Position)
	}
	if got.Duration.Milliseconds() != 512 {
		t.Errorf("duration = %v, want 512ms", got.Duration)
	}

	// The deadline is spent; later ticks never refire.
	tick(l, 512, 2000)
	if fired != 1 {
		t.Errorf("deadline should fire once, got %d", fired)
	}
}

func TestLongPressLifecycleOrder(t *testing.T) {
	l := NewLongPress()
	var order []string
	l.OnPressStart = func() { order = append(order, "start") }
	l.OnLongPress = func(LongPressEvent) { order = append(order, "fired") }
	l.OnPressEnd = func() { order = append(order, "end") }

	l.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	tick(l, 0, 600)
	l.HandleTouch(tev(1, PhaseEnd, 0, 0, 620))

	if len(order) != 3 || order[0] != "start" || order[1] != "fired" || order[2] != "end" {
		t.Errorf("expected [start fired end], got %v", order)
	}
}

func TestLongPressReleaseBeforeThreshold(t *testing.T) {
	l := NewLongPress()
	var order []string
	l.OnPressStart = func() { order = append(order, "start") }
	l.OnLongPress = func(LongPressEvent) { order = append(order, "fired") }
	l.OnPressEnd = func() { order = append(order, "end") }

	l.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	l.HandleTouch(tev(1, PhaseEnd, 0, 0, 200))
	tick(l, 200, 1000)

	if len(order) != 2 || order[0] != "start" || order[1] != "end" {
		t.Errorf("expected [start end], got %v", order)
	}
}

func TestLongPressMovementTolerance(t *testing.T) {
	l := NewLongPress()
	fired := false
	l.OnLongPress = func(LongPressEvent) { fired = true }

	// Drift inside the 10px box on both axes keeps the hold alive.
	l.HandleTouch(tev(1, PhaseBegin, 100, 100, 0))
	l.HandleTouch(tev(1, PhaseMove, 108, 94, 200))
	l.HandleTouch(tev(1, PhaseMove, 92, 110, 400))
	tick(l, 400, 600)
	if !fired {
		t.Error("movement within tolerance should not cancel the hold")
	}
}

func TestLongPressMovementCancels(t *testing.T) {
	l := NewLongPress()
	fired := false
	ended := false
	l.OnLongPress = func(LongPressEvent) { fired = true }
	l.OnPressEnd = func() { ended = true }

	l.HandleTouch(tev(1, PhaseBegin, 100, 100, 0))
	// 11px on one axis is past the tolerance.
	l.HandleTouch(tev(1, PhaseMove, 111, 100, 400))
	if !ended {
		t.Fatal("movement past tolerance should close the press")
	}
	tick(l, 400, 1200)
	if fired {
		t.Error("cancelled hold should never fire")
	}
}

func TestLongPressEndThenCancelIdempotent(t *testing.T) {
	l := NewLongPress()
	ends := 0
	l.OnPressEnd = func() { ends++ }

	l.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	l.HandleTouch(tev(1, PhaseEnd, 0, 0, 100))
	l.HandleTouch(tev(1, PhaseCancel, 0, 0, 110))
	if ends != 1 {
		t.Errorf("OnPressEnd should fire once per gesture, got %d", ends)
	}
}

func TestLongPressSupersede(t *testing.T) {
	l := NewLongPress()
	var got LongPressEvent
	fired := 0
	l.OnLongPress = func(e LongPressEvent) { got = e; fired++ }

	l.HandleTouch(tev(1, PhaseBegin, 10, 10, 0))
	// A new contact at 100ms replaces the first; its deadline is 600ms.
	l.HandleTouch(tev(2, PhaseBegin, 90, 90, 100))

	l.Update(at(520))
	if fired != 0 {
		t.Fatal("the superseded deadline must not fire")
	}
	l.Update(at(600))
	if fired != 1 {
		t.Fatalf("expected 1 fire at the new deadline, got %d", fired)
	}
	if got.Position != (Vec2{90, 90}) {
		t.Errorf("position = %+v, want the superseding press {90 90}", got.Position)
	}
}

func TestLongPressIgnoresOtherPointers(t *testing.T) {
	l := NewLongPress()
	fired := false
	l.OnLongPress = func(LongPressEvent) { fired = true }

	l.HandleTouch(tev(1, PhaseBegin, 100, 100, 0))
	// Another pointer's wild movement and release do not disturb the hold.
	l.HandleTouch(tev(2, PhaseMove, 500, 500, 200))
	l.HandleTouch(tev(2, PhaseEnd, 500, 500, 250))
	tick(l, 250, 600)
	if !fired {
		t.Error("hold should survive unrelated pointer traffic")
	}
}

func TestLongPressReset(t *testing.T) {
	l := NewLongPress()
	fired := false
	ended := false
	l.OnLongPress = func(LongPressEvent) { fired = true }
	l.OnPressEnd = func() { ended = true }

	l.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	l.Reset()
	tick(l, 0, 1000)
	if fired || ended {
		t.Error("reset should disarm without firing callbacks")
	}
	if l.Pressed() {
		t.Error("Pressed should report false after reset")
	}
}
