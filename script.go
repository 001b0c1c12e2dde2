package grasp

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// scriptFrame is the tick cadence of scripted playback, approximating 60Hz.
const scriptFrame = 16 * time.Millisecond

// ScriptStep is one gesture of a Script. Unused fields stay zero; each action
// reads only its own:
//
//	tap:   x, y, ms (press duration, default 16)
//	hold:  x, y, ms (hold duration, default 600)
//	drag:  fromX, fromY, toX, toY, ms (default 120), samples (default 8)
//	pinch: x, y (center), fromDist, toDist, ms (default 200), samples (default 10)
//	wait:  ms
type ScriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Ms       int     `json:"ms,omitempty"`
	Samples  int     `json:"samples,omitempty"`
}

// Script is a replayable gesture sequence, loaded from JSON. Scripts drive
// recognizers deterministically: headless through Run, or live through
// Inject.
type Script struct {
	Name  string       `json:"name,omitempty"`
	Steps []ScriptStep `json:"steps"`
}

// ParseScript parses and validates JSON script data.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "tap", "hold", "drag", "pinch":
		case "wait":
			if st.Ms <= 0 {
				return nil, fmt.Errorf("parse gesture script: step %d: wait needs ms", i)
			}
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &sc, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gesture script: %w", err)
	}
	return ParseScript(data)
}

// Run plays the script against a virtual clock starting at the Unix epoch.
// Every event goes to sink in order; tick runs at scriptFrame cadence between
// events, always before the events of a later instant, so deadline-based
// recognizers fire deterministically mid-script. Trailing animations only
// settle if the script ends with a wait long enough to cover them.
func (sc *Script) Run(sink func(TouchEvent), tick func(time.Time)) {
	p := scriptPlayer{
		sink:  sink,
		tick:  tick,
		epoch: time.Unix(0, 0).UTC(),
		id:    1000,
	}
	for i := range sc.Steps {
		p.play(&sc.Steps[i])
	}
}

// RunSource plays the script through a Source's dispatch and tick path.
func (sc *Script) RunSource(src *Source) {
	sc.Run(func(ev TouchEvent) { src.Dispatch(ev) }, src.Step)
}

// Inject queues the script onto a Source's synthetic timeline for live
// playback over real frames.
func (sc *Script) Inject(src *Source) {
	for _, st := range sc.Steps {
		switch st.Action {
		case "tap":
			src.InjectTap(st.X, st.Y)
		case "hold":
			src.InjectLongPress(st.X, st.Y, st.ms(600))
		case "drag":
			src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.ms(120), st.samples(8))
		case "pinch":
			src.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.ms(200), st.samples(10))
		case "wait":
			src.InjectWait(st.ms(0))
		}
	}
}

func (st *ScriptStep) ms(def int) time.Duration {
	if st.Ms <= 0 {
		return time.Duration(def) * time.Millisecond
	}
	return time.Duration(st.Ms) * time.Millisecond
}

func (st *ScriptStep) samples(def int) int {
	if st.Samples <= 0 {
		return def
	}
	return st.Samples
}

// scriptPlayer walks a script's timeline, interleaving frame ticks with
// event delivery.
type scriptPlayer struct {
	sink  func(TouchEvent)
	tick  func(time.Time)
	epoch time.Time
	clock time.Duration
	id    int
}

func (p *scriptPlayer) play(st *ScriptStep) {
	switch st.Action {
	case "tap":
		id := p.nextID()
		t0 := p.clock
		p.emit(TouchEvent{ID: id, Phase: PhaseBegin, X: st.X, Y: st.Y}, t0)
		p.emit(TouchEvent{ID: id, Phase: PhaseEnd, X: st.X, Y: st.Y}, t0+st.ms(16))
	case "hold":
		id := p.nextID()
		t0 := p.clock
		p.emit(TouchEvent{ID: id, Phase: PhaseBegin, X: st.X, Y: st.Y}, t0)
		p.emit(TouchEvent{ID: id, Phase: PhaseEnd, X: st.X, Y: st.Y}, t0+st.ms(600))
	case "drag":
		id := p.nextID()
		t0 := p.clock
		d := st.ms(120)
		n := st.samples(8)
		p.emit(TouchEvent{ID: id, Phase: PhaseBegin, X: st.FromX, Y: st.FromY}, t0)
		for i := 1; i <= n; i++ {
			f := float64(i) / float64(n)
			p.emit(TouchEvent{
				ID:    id,
				Phase: PhaseMove,
				X:     st.FromX + (st.ToX-st.FromX)*f,
				Y:     st.FromY + (st.ToY-st.FromY)*f,
			}, t0+time.Duration(f*float64(d)))
		}
		p.emit(TouchEvent{ID: id, Phase: PhaseEnd, X: st.ToX, Y: st.ToY}, t0+d)
	case "pinch":
		a, b := p.nextID(), p.nextID()
		t0 := p.clock
		d := st.ms(200)
		n := st.samples(10)
		half := st.FromDist / 2
		p.emit(TouchEvent{ID: a, Phase: PhaseBegin, X: st.X - half, Y: st.Y}, t0)
		p.emit(TouchEvent{ID: b, Phase: PhaseBegin, X: st.X + half, Y: st.Y}, t0)
		for i := 1; i <= n; i++ {
			f := float64(i) / float64(n)
			half = (st.FromDist + (st.ToDist-st.FromDist)*f) / 2
			at := t0 + time.Duration(f*float64(d))
			p.emit(TouchEvent{ID: a, Phase: PhaseMove, X: st.X - half, Y: st.Y}, at)
			p.emit(TouchEvent{ID: b, Phase: PhaseMove, X: st.X + half, Y: st.Y}, at)
		}
		p.emit(TouchEvent{ID: a, Phase: PhaseEnd, X: st.X - half, Y: st.Y}, t0+d)
		p.emit(TouchEvent{ID: b, Phase: PhaseEnd, X: st.X + half, Y: st.Y}, t0+d)
	case "wait":
		p.advanceTo(p.clock + st.ms(0))
	}
}

// emit advances the clock to at (ticking frames on the way) and delivers ev.
func (p *scriptPlayer) emit(ev TouchEvent, at time.Duration) {
	p.advanceTo(at)
	ev.Time = p.epoch.Add(at)
	p.sink(ev)
}

// advanceTo ticks the virtual clock forward in scriptFrame increments, with
// a final partial tick landing exactly on target.
func (p *scriptPlayer) advanceTo(target time.Duration) {
	for p.clock < target {
		next := p.clock + scriptFrame
		if next > target {
			next = target
		}
		p.clock = next
		if p.tick != nil {
			p.tick(p.epoch.Add(next))
		}
	}
}

func (p *scriptPlayer) nextID() int {
	p.id++
	return p.id
}
