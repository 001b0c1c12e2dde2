package grasp

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML-tunable set of recognizer thresholds. Loading decodes
// over the defaults, so a profile file only needs the keys it changes:
//
//	swipe:
//	  threshold: 60
//	carousel:
//	  autoplay_ms: 4000
//
// Durations are integer milliseconds to keep the files plain.
type Profile struct {
	Swipe     SwipeProfile     `yaml:"swipe"`
	Pinch     PinchProfile     `yaml:"pinch"`
	LongPress LongPressProfile `yaml:"long_press"`
	Pull      PullProfile      `yaml:"pull"`
	Dismiss   DismissProfile   `yaml:"dismiss"`
	Carousel  CarouselProfile  `yaml:"carousel"`
	Zoom      ZoomProfile      `yaml:"zoom"`
}

// SwipeProfile tunes Swipe.
type SwipeProfile struct {
	Threshold         float64 `yaml:"threshold"`
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	PreventDefault    bool    `yaml:"prevent_default"`
}

// PinchProfile tunes Pinch.
type PinchProfile struct {
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
}

// LongPressProfile tunes LongPress.
type LongPressProfile struct {
	ThresholdMs   int     `yaml:"threshold_ms"`
	MoveThreshold float64 `yaml:"move_threshold"`
}

// PullProfile tunes PullToRefresh. The resistance factor is fixed and has no
// profile key.
type PullProfile struct {
	Threshold float64 `yaml:"threshold"`
	MaxPull   float64 `yaml:"max_pull"`
}

// DismissProfile tunes DragDismiss.
type DismissProfile struct {
	DeleteThreshold float64 `yaml:"delete_threshold"`
	SlideOut        float64 `yaml:"slide_out"`
}

// CarouselProfile tunes Carousel. autoplay_ms 0 disables autoplay.
type CarouselProfile struct {
	Threshold  float64 `yaml:"threshold"`
	AutoplayMs int     `yaml:"autoplay_ms"`
}

// ZoomProfile tunes PinchZoom; the pinch limits come from PinchProfile.
type ZoomProfile struct {
	DoubleTapScale    float64 `yaml:"double_tap_scale"`
	DoubleTapWindowMs int     `yaml:"double_tap_window_ms"`
}

// DefaultProfile returns the shipped thresholds.
func DefaultProfile() Profile {
	return Profile{
		Swipe: SwipeProfile{
			Threshold:         DefaultSwipeThreshold,
			VelocityThreshold: DefaultSwipeVelocityThreshold,
		},
		Pinch: PinchProfile{
			MinScale: DefaultPinchMinScale,
			MaxScale: DefaultPinchMaxScale,
		},
		LongPress: LongPressProfile{
			ThresholdMs:   int(DefaultLongPressThreshold / time.Millisecond),
			MoveThreshold: DefaultLongPressMoveThreshold,
		},
		Pull: PullProfile{
			Threshold: DefaultPullThreshold,
			MaxPull:   DefaultMaxPull,
		},
		Dismiss: DismissProfile{
			DeleteThreshold: DefaultDeleteThreshold,
			SlideOut:        DefaultSlideOutDistance,
		},
		Carousel: CarouselProfile{
			Threshold: DefaultCarouselThreshold,
		},
		Zoom: ZoomProfile{
			DoubleTapScale:    DefaultDoubleTapScale,
			DoubleTapWindowMs: int(DefaultDoubleTapWindow / time.Millisecond),
		},
	}
}

// LoadProfile decodes a profile over the defaults. Unknown keys are an
// error, so typos fail loudly instead of silently keeping a default.
func LoadProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadProfileFile reads and decodes a profile file.
func LoadProfileFile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	defer f.Close()
	return LoadProfile(f)
}

// Write emits the profile as YAML.
func (p Profile) Write(w io.Writer) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Validate checks every threshold for sanity.
func (p Profile) Validate() error {
	switch {
	case p.Swipe.Threshold <= 0:
		return fmt.Errorf("profile: swipe threshold must be positive, got %v", p.Swipe.Threshold)
	case p.Swipe.VelocityThreshold <= 0:
		return fmt.Errorf("profile: swipe velocity_threshold must be positive, got %v", p.Swipe.VelocityThreshold)
	case p.Pinch.MinScale <= 0:
		return fmt.Errorf("profile: pinch min_scale must be positive, got %v", p.Pinch.MinScale)
	case p.Pinch.MaxScale < p.Pinch.MinScale:
		return fmt.Errorf("profile: pinch max_scale %v below min_scale %v", p.Pinch.MaxScale, p.Pinch.MinScale)
	case p.LongPress.ThresholdMs <= 0:
		return fmt.Errorf("profile: long_press threshold_ms must be positive, got %d", p.LongPress.ThresholdMs)
	case p.LongPress.MoveThreshold < 0:
		return fmt.Errorf("profile: long_press move_threshold must not be negative, got %v", p.LongPress.MoveThreshold)
	case p.Pull.Threshold <= 0:
		return fmt.Errorf("profile: pull threshold must be positive, got %v", p.Pull.Threshold)
	case p.Pull.MaxPull < p.Pull.Threshold:
		return fmt.Errorf("profile: pull max_pull %v below threshold %v", p.Pull.MaxPull, p.Pull.Threshold)
	case p.Dismiss.DeleteThreshold <= 0:
		return fmt.Errorf("profile: dismiss delete_threshold must be positive, got %v", p.Dismiss.DeleteThreshold)
	case p.Dismiss.SlideOut <= 0:
		return fmt.Errorf("profile: dismiss slide_out must be positive, got %v", p.Dismiss.SlideOut)
	case p.Carousel.Threshold <= 0:
		return fmt.Errorf("profile: carousel threshold must be positive, got %v", p.Carousel.Threshold)
	case p.Carousel.AutoplayMs < 0:
		return fmt.Errorf("profile: carousel autoplay_ms must not be negative, got %d", p.Carousel.AutoplayMs)
	case p.Zoom.DoubleTapScale <= 0:
		return fmt.Errorf("profile: zoom double_tap_scale must be positive, got %v", p.Zoom.DoubleTapScale)
	case p.Zoom.DoubleTapWindowMs <= 0:
		return fmt.Errorf("profile: zoom double_tap_window_ms must be positive, got %d", p.Zoom.DoubleTapWindowMs)
	}
	return nil
}

// Apply configures a recognizer from the profile. Composites configure their
// inner recognizers too. Unknown recognizer types are left untouched.
func (p Profile) Apply(r Recognizer) {
	switch t := r.(type) {
	case *Swipe:
		t.Threshold = p.Swipe.Threshold
		t.VelocityThreshold = p.Swipe.VelocityThreshold
		t.PreventDefault = p.Swipe.PreventDefault
	case *Pinch:
		t.MinScale = p.Pinch.MinScale
		t.MaxScale = p.Pinch.MaxScale
	case *LongPress:
		t.Threshold = time.Duration(p.LongPress.ThresholdMs) * time.Millisecond
		t.MoveThreshold = p.LongPress.MoveThreshold
	case *PullToRefresh:
		t.Threshold = p.Pull.Threshold
		t.MaxPull = p.Pull.MaxPull
	case *DragDismiss:
		t.DeleteThreshold = p.Dismiss.DeleteThreshold
		t.SlideOutDistance = p.Dismiss.SlideOut
	case *Carousel:
		t.Threshold = p.Carousel.Threshold
		t.Autoplay = time.Duration(p.Carousel.AutoplayMs) * time.Millisecond
	case *PinchZoom:
		t.DoubleTapScale = p.Zoom.DoubleTapScale
		t.DoubleTapWindow = time.Duration(p.Zoom.DoubleTapWindowMs) * time.Millisecond
		p.Apply(t.Pinch)
	case *LongPressMenu:
		p.Apply(t.Press)
	}
}
