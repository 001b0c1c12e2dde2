package grasp

import "testing"

func swipeOnce(s *Swipe, dx, dy float64, durMs int) {
	s.HandleTouch(tev(1, PhaseBegin, 100, 100, 0))
	s.HandleTouch(tev(1, PhaseMove, 100+dx/2, 100+dy/2, durMs/2))
	s.HandleTouch(tev(1, PhaseEnd, 100+dx, 100+dy, durMs))
}

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		durMs  int
		wantH  Direction
		wantV  Direction
	}{
		{"right", 60, 0, 100, DirectionRight, DirectionNone},
		{"left", -60, 0, 100, DirectionLeft, DirectionNone},
		{"down", 0, 60, 100, DirectionNone, DirectionDown},
		{"up", 0, -60, 100, DirectionNone, DirectionUp},
		{"diagonal", 80, 80, 100, DirectionRight, DirectionDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipe()
			var got SwipeEvent
			fired := false
			s.OnSwipe = func(e SwipeEvent) { got = e; fired = true }

			swipeOnce(s, tt.dx, tt.dy, tt.durMs)
			if !fired {
				t.Fatal("expected a swipe")
			}
			if got.Horizontal != tt.wantH || got.Vertical != tt.wantV {
				t.Errorf("directions = %v/%v, want %v/%v", got.Horizontal, got.Vertical, tt.wantH, tt.wantV)
			}
		})
	}
}

func TestSwipeRejectsSlowDrag(t *testing.T) {
	// 60px over 400ms is 0.15 px/ms, below the velocity threshold.
	s := NewSwipe()
	fired := false
	s.OnSwipe = func(SwipeEvent) { fired = true }

	swipeOnce(s, 60, 0, 400)
	if fired {
		t.Error("slow drag should not classify as a swipe")
	}
}

func TestSwipeRejectsShortFlick(t *testing.T) {
	// 40px in 50ms is fast but under the distance threshold.
	s := NewSwipe()
	fired := false
	s.OnSwipe = func(SwipeEvent) { fired = true }

	swipeOnce(s, 40, 0, 50)
	if fired {
		t.Error("short flick should not classify as a swipe")
	}
}

func TestSwipeEventFields(t *testing.T) {
	s := NewSwipe()
	var got SwipeEvent
	s.OnSwipe = func(e SwipeEvent) { got = e }

	swipeOnce(s, -90, 0, 150)
	if got.Distance.X != -90 || got.Distance.Y != 0 {
		t.Errorf("Distance = %+v, want {-90 0}", got.Distance)
	}
	if got.Velocity.X != 0.6 {
		t.Errorf("Velocity.X = %v, want 0.6", got.Velocity.X)
	}
	if got.Duration.Milliseconds() != 150 {
		t.Errorf("Duration = %v, want 150ms", got.Duration)
	}
}

func TestSwipeCallbackOrder(t *testing.T) {
	s := NewSwipe()
	var order []string
	s.OnRight = func(SwipeEvent) { order = append(order, "right") }
	s.OnDown = func(SwipeEvent) { order = append(order, "down") }
	s.OnSwipe = func(SwipeEvent) { order = append(order, "any") }

	swipeOnce(s, 80, 80, 100)
	if len(order) != 3 || order[0] != "right" || order[1] != "down" || order[2] != "any" {
		t.Errorf("expected [right down any], got %v", order)
	}
}

func TestSwipePreventDefaultClaimsEnd(t *testing.T) {
	s := NewSwipe()
	s.PreventDefault = true
	s.OnSwipe = func(SwipeEvent) {}

	if s.HandleTouch(tev(1, PhaseBegin, 0, 0, 0)) {
		t.Error("begin should not be claimed")
	}
	if s.HandleTouch(tev(1, PhaseMove, 30, 0, 50)) {
		t.Error("move should not be claimed")
	}
	if !s.HandleTouch(tev(1, PhaseEnd, 60, 0, 100)) {
		t.Error("end of a detected swipe should be claimed")
	}

	// Without PreventDefault the same gesture returns false.
	s.PreventDefault = false
	s.HandleTouch(tev(1, PhaseBegin, 0, 0, 200))
	if s.HandleTouch(tev(1, PhaseEnd, 60, 0, 300)) {
		t.Error("end should not be claimed with PreventDefault off")
	}
}

func TestSwipeRejectedGestureNeverClaims(t *testing.T) {
	s := NewSwipe()
	s.PreventDefault = true

	s.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	if s.HandleTouch(tev(1, PhaseEnd, 10, 0, 100)) {
		t.Error("a rejected gesture should not claim its end event")
	}
}

func TestSwipeCancelDropsGesture(t *testing.T) {
	s := NewSwipe()
	fired := false
	s.OnSwipe = func(SwipeEvent) { fired = true }

	s.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	s.HandleTouch(tev(1, PhaseMove, 60, 0, 50))
	s.HandleTouch(tev(1, PhaseCancel, 60, 0, 60))
	if fired {
		t.Error("cancel should never classify")
	}

	// A later end for the same pointer is stale and ignored.
	s.HandleTouch(tev(1, PhaseEnd, 120, 0, 100))
	if fired {
		t.Error("stale end after cancel should be ignored")
	}
}

func TestSwipeFirstFingerWins(t *testing.T) {
	s := NewSwipe()
	var got SwipeEvent
	s.OnSwipe = func(e SwipeEvent) { got = e }

	s.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	// A second contact neither restarts tracking nor classifies on lift.
	s.HandleTouch(tev(2, PhaseBegin, 500, 500, 10))
	s.HandleTouch(tev(2, PhaseEnd, 400, 500, 60))
	if got.Horizontal != DirectionNone {
		t.Fatal("second finger should not classify")
	}

	s.HandleTouch(tev(1, PhaseEnd, 70, 0, 100))
	if got.Horizontal != DirectionRight {
		t.Errorf("first finger should classify right, got %v", got.Horizontal)
	}
}

func TestSwipeReusableAfterFire(t *testing.T) {
	s := NewSwipe()
	count := 0
	s.OnSwipe = func(SwipeEvent) { count++ }

	swipeOnce(s, 60, 0, 100)
	s.HandleTouch(tev(2, PhaseBegin, 0, 0, 500))
	s.HandleTouch(tev(2, PhaseEnd, -60, 0, 600))
	if count != 2 {
		t.Errorf("expected 2 swipes, got %d", count)
	}
}

func TestSwipeReset(t *testing.T) {
	s := NewSwipe()
	fired := false
	s.OnSwipe = func(SwipeEvent) { fired = true }

	s.HandleTouch(tev(1, PhaseBegin, 0, 0, 0))
	s.Reset()
	s.HandleTouch(tev(1, PhaseEnd, 60, 0, 100))
	if fired {
		t.Error("reset should abandon the gesture without firing")
	}
}
