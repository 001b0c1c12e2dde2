package grasp

import "time"

// Menu geometry defaults, in px.
const (
	DefaultMenuItemWidth  = 180.0
	DefaultMenuItemHeight = 44.0
)

// MenuItem is one entry of a long-press menu.
type MenuItem struct {
	Label    string
	OnSelect func()
}

// LongPressMenu composes a LongPress with a position-anchored contextual menu
// lifecycle. A successful hold opens the menu at the press position, clamped
// so the whole menu stays inside the viewport. While open, a tap on an item
// selects it (fires its OnSelect and closes); a tap anywhere else is the
// backdrop and closes without selecting. The release of the hold that opened
// the menu is swallowed, so the menu survives its own opening gesture.
//
// At most one menu is open per controller; a long-press while open re-anchors
// the open menu (OnOpen fires again) rather than stacking a second one.
type LongPressMenu struct {
	// Press is the inner recognizer; tune hold thresholds there.
	Press *LongPress
	// Items are the menu entries, top to bottom.
	Items []MenuItem
	// ItemWidth and ItemHeight size the menu for clamping and hit tests.
	ItemWidth  float64
	ItemHeight float64
	// OnOpen fires when the menu opens or re-anchors, with the clamped
	// anchor.
	OnOpen func(anchor Vec2)
	// OnClose fires when the menu closes, by selection or backdrop.
	OnClose func()

	viewport Rect
	open     bool
	anchor   Vec2
	curPtr   int // pointer of the newest contact
	swallow  int // pointer whose release must not act as a tap
	hasSwal  bool
}

var _ Recognizer = (*LongPressMenu)(nil)

// NewLongPressMenu returns a controller whose menu is clamped to viewport.
func NewLongPressMenu(viewport Rect) *LongPressMenu {
	m := &LongPressMenu{
		Press:      NewLongPress(),
		ItemWidth:  DefaultMenuItemWidth,
		ItemHeight: DefaultMenuItemHeight,
		viewport:   viewport,
	}
	m.Press.OnLongPress = func(e LongPressEvent) {
		m.openAt(e.Position)
	}
	return m
}

// SetViewport updates the clamping bounds (e.g. on window resize). An open
// menu keeps its anchor until the next open.
func (m *LongPressMenu) SetViewport(v Rect) {
	m.viewport = v
}

// HandleTouch feeds the inner press and, while the menu is open, interprets
// taps as selection or backdrop dismissal. Always returns false.
func (m *LongPressMenu) HandleTouch(ev TouchEvent) bool {
	m.Press.HandleTouch(ev)

	switch ev.Phase {
	case PhaseBegin:
		m.curPtr = ev.ID
	case PhaseEnd:
		if m.hasSwal && ev.ID == m.swallow {
			// The opening hold's own release.
			m.hasSwal = false
			return false
		}
		if !m.open {
			return false
		}
		if i := m.itemAt(ev.X, ev.Y); i >= 0 {
			m.Select(i)
		} else {
			debugf("menu dismissed by backdrop tap")
			m.Dismiss()
		}
	case PhaseCancel:
		// A cancelled contact neither selects nor dismisses.
		if m.hasSwal && ev.ID == m.swallow {
			m.hasSwal = false
		}
	}
	return false
}

// Update advances the inner press deadline; the menu itself holds no timers.
func (m *LongPressMenu) Update(now time.Time) {
	m.Press.Update(now)
}

// Reset closes the menu and the inner press without firing callbacks.
func (m *LongPressMenu) Reset() {
	m.Press.Reset()
	m.open = false
	m.anchor = Vec2{}
	m.curPtr = 0
	m.swallow = 0
	m.hasSwal = false
}

// Open reports whether the menu is currently open.
func (m *LongPressMenu) Open() bool {
	return m.open
}

// Anchor returns the clamped top-left corner of the open menu.
func (m *LongPressMenu) Anchor() Vec2 {
	return m.anchor
}

// MenuBounds returns the rectangle the open menu occupies.
func (m *LongPressMenu) MenuBounds() Rect {
	return Rect{
		X:      m.anchor.X,
		Y:      m.anchor.Y,
		Width:  m.ItemWidth,
		Height: m.ItemHeight * float64(len(m.Items)),
	}
}

// Select invokes item i's action and closes the menu. Out-of-range indexes
// and closed menus are no-ops.
func (m *LongPressMenu) Select(i int) {
	if !m.open || i < 0 || i >= len(m.Items) {
		return
	}
	debugf("menu select %d (%s)", i, m.Items[i].Label)
	if fn := m.Items[i].OnSelect; fn != nil {
		fn()
	}
	m.close()
}

// Dismiss closes the menu without selecting. Closed menus are a no-op.
func (m *LongPressMenu) Dismiss() {
	if !m.open {
		return
	}
	m.close()
}

// openAt opens or re-anchors the menu at the press position, clamped to the
// viewport.
func (m *LongPressMenu) openAt(pos Vec2) {
	b := m.MenuBounds()
	m.anchor = Vec2{
		X: clamp(pos.X, m.viewport.X, m.viewport.X+m.viewport.Width-b.Width),
		Y: clamp(pos.Y, m.viewport.Y, m.viewport.Y+m.viewport.Height-b.Height),
	}
	m.open = true
	m.swallow = m.curPtr
	m.hasSwal = true
	debugf("menu opened at (%.0f,%.0f)", m.anchor.X, m.anchor.Y)
	if m.OnOpen != nil {
		m.OnOpen(m.anchor)
	}
}

func (m *LongPressMenu) close() {
	m.open = false
	if m.OnClose != nil {
		m.OnClose()
	}
}

// itemAt returns the index of the menu item under (x, y), or -1 when the
// point is outside the open menu.
func (m *LongPressMenu) itemAt(x, y float64) int {
	if len(m.Items) == 0 || !m.MenuBounds().Contains(x, y) {
		return -1
	}
	return clampIndex(int((y-m.anchor.Y)/m.ItemHeight), len(m.Items))
}
