package grasp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultProfileMatchesShippedThresholds(t *testing.T) {
	p := DefaultProfile()
	if p.Swipe.Threshold != 50 || p.Swipe.VelocityThreshold != 0.3 {
		t.Errorf("swipe = %+v", p.Swipe)
	}
	if p.Swipe.PreventDefault {
		t.Error("prevent_default ships off")
	}
	if p.Pinch.MinScale != 0.5 || p.Pinch.MaxScale != 3.0 {
		t.Errorf("pinch = %+v", p.Pinch)
	}
	if p.LongPress.ThresholdMs != 500 || p.LongPress.MoveThreshold != 10 {
		t.Errorf("long_press = %+v", p.LongPress)
	}
	if p.Pull.Threshold != 80 || p.Pull.MaxPull != 150 {
		t.Errorf("pull = %+v", p.Pull)
	}
	if p.Dismiss.DeleteThreshold != 100 || p.Dismiss.SlideOut != 500 {
		t.Errorf("dismiss = %+v", p.Dismiss)
	}
	if p.Carousel.Threshold != 50 || p.Carousel.AutoplayMs != 0 {
		t.Errorf("carousel = %+v", p.Carousel)
	}
	if p.Zoom.DoubleTapScale != 2.0 || p.Zoom.DoubleTapWindowMs != 300 {
		t.Errorf("zoom = %+v", p.Zoom)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("the shipped defaults must validate: %v", err)
	}
}

func TestProfileWriteLoadRoundTrip(t *testing.T) {
	p := DefaultProfile()
	p.Swipe.Threshold = 64
	p.Swipe.PreventDefault = true
	p.Carousel.AutoplayMs = 4000

	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := LoadProfile(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestLoadProfilePartialKeepsDefaults(t *testing.T) {
	p, err := LoadProfile(strings.NewReader(`
swipe:
  threshold: 75
carousel:
  autoplay_ms: 4000
`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Swipe.Threshold != 75 {
		t.Errorf("swipe threshold = %v, want 75", p.Swipe.Threshold)
	}
	if p.Swipe.VelocityThreshold != 0.3 {
		t.Error("keys the file omits keep their defaults")
	}
	if p.Carousel.AutoplayMs != 4000 {
		t.Errorf("autoplay = %d, want 4000", p.Carousel.AutoplayMs)
	}
	if p.LongPress.ThresholdMs != 500 || p.Pull.MaxPull != 150 {
		t.Error("untouched sections keep their defaults")
	}
}

func TestLoadProfileRejectsUnknownKeys(t *testing.T) {
	_, err := LoadProfile(strings.NewReader("swipe:\n  treshold: 10\n"))
	if err == nil {
		t.Fatal("a typoed key must fail, not silently keep the default")
	}
	if !strings.Contains(err.Error(), "load profile") {
		t.Errorf("error = %q", err)
	}
}

func TestLoadProfileRejectsBadValues(t *testing.T) {
	_, err := LoadProfile(strings.NewReader("swipe:\n  threshold: -5\n"))
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "swipe threshold") {
		t.Errorf("error = %q", err)
	}
}

func TestLoadProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	data := []byte("pull:\n  threshold: 90\n  max_pull: 200\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfileFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Pull.Threshold != 90 || p.Pull.MaxPull != 200 {
		t.Errorf("pull = %+v", p.Pull)
	}

	if _, err := LoadProfileFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr string
	}{
		{"negative swipe threshold", func(p *Profile) { p.Swipe.Threshold = -1 }, "swipe threshold"},
		{"zero velocity threshold", func(p *Profile) { p.Swipe.VelocityThreshold = 0 }, "velocity_threshold"},
		{"pinch max below min", func(p *Profile) { p.Pinch.MaxScale = 0.25 }, "max_scale"},
		{"zero long press threshold", func(p *Profile) { p.LongPress.ThresholdMs = 0 }, "threshold_ms"},
		{"negative move threshold", func(p *Profile) { p.LongPress.MoveThreshold = -1 }, "move_threshold"},
		{"max pull below threshold", func(p *Profile) { p.Pull.MaxPull = 40 }, "max_pull"},
		{"negative autoplay", func(p *Profile) { p.Carousel.AutoplayMs = -1 }, "autoplay_ms"},
		{"zero double tap window", func(p *Profile) { p.Zoom.DoubleTapWindowMs = 0 }, "double_tap_window_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestProfileApplyConfiguresRecognizers(t *testing.T) {
	p := DefaultProfile()
	p.Swipe.Threshold = 70
	p.Swipe.PreventDefault = true
	p.LongPress.ThresholdMs = 750
	p.Pull.MaxPull = 200
	p.Dismiss.SlideOut = 640
	p.Carousel.AutoplayMs = 3000

	sw := NewSwipe()
	p.Apply(sw)
	if sw.Threshold != 70 || !sw.PreventDefault {
		t.Errorf("swipe after apply: threshold=%v preventDefault=%v", sw.Threshold, sw.PreventDefault)
	}

	lp := NewLongPress()
	p.Apply(lp)
	if lp.Threshold != 750*time.Millisecond {
		t.Errorf("long press threshold = %v, want 750ms", lp.Threshold)
	}

	pull := NewPullToRefresh()
	p.Apply(pull)
	if pull.MaxPull != 200 {
		t.Errorf("max pull = %v, want 200", pull.MaxPull)
	}

	dd := NewDragDismiss()
	p.Apply(dd)
	if dd.SlideOutDistance != 640 {
		t.Errorf("slide out = %v, want 640", dd.SlideOutDistance)
	}

	c := NewCarousel(3)
	p.Apply(c)
	if c.Autoplay != 3*time.Second {
		t.Errorf("autoplay = %v, want 3s", c.Autoplay)
	}
}

func TestProfileApplyReachesComposites(t *testing.T) {
	p := DefaultProfile()
	p.Pinch.MaxScale = 5
	p.Zoom.DoubleTapScale = 2.5
	p.LongPress.ThresholdMs = 650

	pz := NewPinchZoom()
	p.Apply(pz)
	if pz.DoubleTapScale != 2.5 {
		t.Errorf("double tap scale = %v, want 2.5", pz.DoubleTapScale)
	}
	if pz.Pinch.MaxScale != 5 {
		t.Error("the inner pinch picks up the pinch section")
	}

	menu := NewLongPressMenu(Rect{Width: 800, Height: 600})
	p.Apply(menu)
	if menu.Press.Threshold != 650*time.Millisecond {
		t.Error("the inner press picks up the long_press section")
	}
}
