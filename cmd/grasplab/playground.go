package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/grasp"
	"github.com/spf13/cobra"
)

const (
	screenW    = 960
	screenH    = 640
	rowCount   = 4
	traceLines = 3
	zoomBase   = 120 // px edge of the zoom square at rest
)

// Pane layout: three panes across the top, two below, a shared trace above.
var (
	carouselPane = grasp.Rect{X: 20, Y: 60, Width: 290, Height: 240}
	listPane     = grasp.Rect{X: 330, Y: 60, Width: 290, Height: 240}
	feedPane     = grasp.Rect{X: 640, Y: 60, Width: 300, Height: 240}
	zoomPane     = grasp.Rect{X: 20, Y: 330, Width: 450, Height: 290}
	menuPane     = grasp.Rect{X: 490, Y: 330, Width: 450, Height: 290}
)

var slideColors = [][3]float32{
	{0.86, 0.35, 0.35},
	{0.35, 0.62, 0.86},
	{0.40, 0.80, 0.50},
}

var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	prof, err := activeProfile()
	if err != nil {
		return err
	}
	grasp.SetDebug(debugFlag)

	ebiten.SetWindowTitle("Grasp \u2014 Playground")
	ebiten.SetWindowSize(screenW, screenH)
	return ebiten.RunGame(newPlayground(prof))
}

// listRow is one dismissible row of the swipe list pane.
type listRow struct {
	label string
	dd    *grasp.DragDismiss
	att   *grasp.Attachment
}

// playground implements ebiten.Game, one live pane per recognizer consumer.
type playground struct {
	prof grasp.Profile
	src  *grasp.Source

	carousel *grasp.Carousel
	rows     []*listRow
	rowSeq   int
	pull     *grasp.PullToRefresh
	feed     []string
	wasBusy  bool
	zoom     *grasp.PinchZoom
	menu     *grasp.LongPressMenu

	trace []string
}

func newPlayground(prof grasp.Profile) *playground {
	g := &playground{
		prof: prof,
		src:  grasp.NewSource(),
		feed: []string{"pull down past the bar to refresh"},
	}

	g.carousel = grasp.NewCarousel(len(slideColors))
	prof.Apply(g.carousel)
	g.carousel.OnChange = func(i int) { g.tracef("carousel -> slide %d", i+1) }
	g.src.Attach(g.carousel).SetBounds(carouselPane)

	for i := 0; i < rowCount; i++ {
		g.addRow()
	}

	g.pull = grasp.NewPullToRefresh()
	prof.Apply(g.pull)
	g.pull.Refresh = func(ctx context.Context) error {
		select {
		case <-time.After(800 * time.Millisecond):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	g.src.Attach(g.pull).SetBounds(feedPane)

	g.zoom = grasp.NewPinchZoom()
	prof.Apply(g.zoom)
	g.src.Attach(g.zoom).SetBounds(zoomPane)

	g.menu = grasp.NewLongPressMenu(menuPane)
	prof.Apply(g.menu)
	g.menu.Items = []grasp.MenuItem{
		{Label: "Copy", OnSelect: func() { g.tracef("menu: copy") }},
		{Label: "Share", OnSelect: func() { g.tracef("menu: share") }},
		{Label: "Delete", OnSelect: func() { g.tracef("menu: delete") }},
	}
	g.menu.OnOpen = func(a grasp.Vec2) { g.tracef("menu opened at (%.0f,%.0f)", a.X, a.Y) }
	g.src.Attach(g.menu).SetBounds(menuPane)

	// A window-wide swipe feeds the trace so flicks show up from any pane.
	sw := grasp.NewSwipe()
	prof.Apply(sw)
	sw.OnSwipe = func(e grasp.SwipeEvent) {
		g.tracef("swipe %s (%.0f,%.0f) in %v", swipeLabel(e), e.Distance.X, e.Distance.Y, e.Duration)
	}
	g.src.Attach(sw)

	g.tracef("drag, flick, hold, and pinch in any pane")
	return g
}

func (g *playground) Update() error {
	g.src.Update()
	g.reapRows()
	g.observeRefresh()
	return nil
}

func (g *playground) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 22, B: 34, A: 255})

	g.drawCarousel(screen)
	g.drawList(screen)
	g.drawFeed(screen)
	g.drawZoom(screen)
	g.drawMenuPane(screen)

	for i, line := range g.trace {
		ebitenutil.DebugPrintAt(screen, line, 8, 6+i*14)
	}
}

func (g *playground) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// tracef appends one line to the on-screen gesture trace.
func (g *playground) tracef(format string, args ...any) {
	g.trace = append(g.trace, fmt.Sprintf(format, args...))
	if len(g.trace) > traceLines {
		g.trace = g.trace[len(g.trace)-traceLines:]
	}
}

// addRow creates one dismissible row and stacks it under the existing ones.
func (g *playground) addRow() {
	g.rowSeq++
	row := &listRow{
		label: fmt.Sprintf("message %d", g.rowSeq),
		dd:    grasp.NewDragDismiss(),
	}
	g.prof.Apply(row.dd)
	row.dd.OnDelete = func() { g.tracef("dismissed %q", row.label) }
	row.att = g.src.Attach(row.dd)
	g.rows = append(g.rows, row)
	g.restackRows()
}

// reapRows removes rows whose slide-out settled and refills an empty list.
func (g *playground) reapRows() {
	kept := g.rows[:0]
	for _, row := range g.rows {
		if row.dd.Dismissed() {
			row.att.Remove()
			continue
		}
		kept = append(kept, row)
	}
	if len(kept) != len(g.rows) {
		g.rows = kept
		g.restackRows()
	}
	if len(g.rows) == 0 {
		for i := 0; i < rowCount; i++ {
			g.addRow()
		}
		g.tracef("list repopulated")
	}
}

// restackRows rebinds each row's hit bounds to its slot.
func (g *playground) restackRows() {
	for i, row := range g.rows {
		row.att.SetBounds(rowBounds(i))
	}
}

func rowBounds(i int) grasp.Rect {
	return grasp.Rect{
		X:      listPane.X + 8,
		Y:      listPane.Y + 28 + float64(i)*48,
		Width:  listPane.Width - 16,
		Height: 40,
	}
}

// observeRefresh turns the refresh flag's edges into feed items and trace
// lines. The refresh goroutine itself only sleeps; all state stays on the
// update thread.
func (g *playground) observeRefresh() {
	busy := g.pull.Refreshing()
	if busy && !g.wasBusy {
		g.tracef("refresh started")
	}
	if !busy && g.wasBusy {
		item := fmt.Sprintf("fetched at %s", time.Now().Format("15:04:05"))
		g.feed = append([]string{item}, g.feed...)
		if len(g.feed) > 8 {
			g.feed = g.feed[:8]
		}
		g.tracef("feed refreshed")
	}
	g.wasBusy = busy
}

func (g *playground) drawCarousel(screen *ebiten.Image) {
	paneFrame(screen, carouselPane, "carousel: drag, release past 50px")

	strip := inset(carouselPane, 8)
	strip.Y += 20
	strip.Height -= 38
	clip := clipTo(screen, strip)

	idx := g.carousel.Index()
	for i := 0; i < g.carousel.Len(); i++ {
		x := strip.X + float64(i-idx)*strip.Width + g.carousel.DragOffset()
		c := slideColors[i%len(slideColors)]
		fillRect(clip, x+2, strip.Y, strip.Width-4, strip.Height, c[0], c[1], c[2], 1)
		ebitenutil.DebugPrintAt(clip, fmt.Sprintf("slide %d", i+1), int(x)+10, int(strip.Y)+8)
	}

	// Dots, active one brighter and larger.
	n := g.carousel.Len()
	startX := carouselPane.X + carouselPane.Width/2 - float64(n-1)*8
	for i := 0; i < n; i++ {
		size, shade := 6.0, float32(0.45)
		if i == idx {
			size, shade = 8, 0.95
		}
		fillRect(screen, startX+float64(i)*16-size/2, carouselPane.Y+carouselPane.Height-14, size, size, shade, shade, shade, 1)
	}
}

func (g *playground) drawList(screen *ebiten.Image) {
	paneFrame(screen, listPane, "swipe list: drag rows left")

	for i, row := range g.rows {
		b := rowBounds(i)
		x := b.X + row.dd.Offset()
		shade := float32(0.30) + float32(i)*0.04
		fillRect(screen, x, b.Y, b.Width, b.Height, shade, shade, shade+0.12, 1)
		fillRect(screen, x, b.Y, 4, b.Height, 0.86, 0.35, 0.35, 1)
		ebitenutil.DebugPrintAt(screen, row.label, int(x)+12, int(b.Y)+12)
	}
}

func (g *playground) drawFeed(screen *ebiten.Image) {
	paneFrame(screen, feedPane, "pull feed: drag down from the top")

	inner := inset(feedPane, 8)
	inner.Y += 20
	inner.Height -= 20
	clip := clipTo(screen, inner)

	d := g.pull.Distance()
	if d > 0 {
		fillRect(clip, inner.X, inner.Y, inner.Width, d, 0.35, 0.55, 0.85, 0.7)
	}
	if g.pull.Refreshing() {
		ebitenutil.DebugPrintAt(clip, "refreshing...", int(inner.X)+8, int(inner.Y)+4)
	}

	y := inner.Y + d + 4
	for _, item := range g.feed {
		fillRect(clip, inner.X, y, 3, 14, 0.40, 0.80, 0.50, 1)
		ebitenutil.DebugPrintAt(clip, item, int(inner.X)+10, int(y))
		y += 22
	}
}

func (g *playground) drawZoom(screen *ebiten.Image) {
	paneFrame(screen, zoomPane, "zoom box: pinch to scale, drag to pan, double-tap toggles")

	scale := g.zoom.Scale()
	off := g.zoom.Offset()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom %.2f  offset (%.0f,%.0f)", scale, off.X, off.Y),
		int(zoomPane.X)+8, int(zoomPane.Y)+20)

	clip := clipTo(screen, inset(zoomPane, 8))
	size := zoomBase * scale
	cx := zoomPane.X + zoomPane.Width/2 + off.X
	cy := zoomPane.Y + zoomPane.Height/2 + off.Y
	fillRect(clip, cx-size/2, cy-size/2, size, size, 0.35, 0.62, 0.86, 1)
	fillRect(clip, cx-size/4, cy-size/4, size/2, size/2, 0.86, 0.75, 0.35, 1)
}

func (g *playground) drawMenuPane(screen *ebiten.Image) {
	paneFrame(screen, menuPane, "menu area: hold 500ms to open")

	if !g.menu.Open() {
		return
	}
	b := g.menu.MenuBounds()
	fillRect(screen, b.X+3, b.Y+3, b.Width, b.Height, 0, 0, 0, 0.5)
	for i, item := range g.menu.Items {
		y := b.Y + float64(i)*g.menu.ItemHeight
		shade := float32(0.82)
		if i%2 == 1 {
			shade = 0.74
		}
		fillRect(screen, b.X, y, b.Width, g.menu.ItemHeight, shade, shade, shade, 1)
		ebitenutil.DebugPrintAt(screen, item.Label, int(b.X)+10, int(y)+14)
	}
}

// paneFrame draws a pane's border, background, and title.
func paneFrame(screen *ebiten.Image, pane grasp.Rect, title string) {
	fillRect(screen, pane.X-1, pane.Y-1, pane.Width+2, pane.Height+2, 0.42, 0.40, 0.55, 1)
	fillRect(screen, pane.X, pane.Y, pane.Width, pane.Height, 0.11, 0.10, 0.16, 1)
	ebitenutil.DebugPrintAt(screen, title, int(pane.X)+6, int(pane.Y)+3)
}

// fillRect draws a solid rectangle by scaling the shared white pixel, colors
// premultiplied.
func fillRect(dst *ebiten.Image, x, y, w, h float64, r, g, b, a float32) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(r*a, g*a, b*a, a)
	dst.DrawImage(whitePixel, &op)
}

// clipTo returns the screen region covering r; draws through it are clipped
// but keep screen coordinates.
func clipTo(screen *ebiten.Image, r grasp.Rect) *ebiten.Image {
	return screen.SubImage(image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))).(*ebiten.Image)
}

func inset(r grasp.Rect, pad float64) grasp.Rect {
	return grasp.Rect{X: r.X + pad, Y: r.Y + pad, Width: r.Width - 2*pad, Height: r.Height - 2*pad}
}

// swipeLabel names a swipe's axes compactly, e.g. "left" or "right+down".
func swipeLabel(e grasp.SwipeEvent) string {
	switch {
	case e.Horizontal == grasp.DirectionNone:
		return e.Vertical.String()
	case e.Vertical == grasp.DirectionNone:
		return e.Horizontal.String()
	default:
		return e.Horizontal.String() + "+" + e.Vertical.String()
	}
}
