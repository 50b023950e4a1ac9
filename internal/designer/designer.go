// Package designer is the interactive layout designer: it routes terminal
// input to the document and the drag engine and draws the result.
package designer

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/grindlemire/go-tui-designer/internal/debug"
	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
	"github.com/grindlemire/go-tui-designer/pkg/term"
)

// Host is the part of the terminal app the designer drives. *term.App
// implements it.
type Host interface {
	drag.FrameScheduler
	MarkDirty()
	SetMouseMode(mode term.MouseMode)
	MouseMode() term.MouseMode
	Stop()
}

// Options configures a Designer.
type Options struct {
	Theme        string
	SnapGrid     float64
	CanvasWidth  int
	CanvasHeight int
	Metrics      *drag.Metrics
	Logger       *slog.Logger
}

// Designer implements term.Handler.
type Designer struct {
	doc       *canvas.Document
	host      Host
	engine    *drag.Engine
	overrides *drag.OverrideMap
	opts      Options
	theme     Theme
	logger    *slog.Logger

	width, height int
	captured      string
	edit          *textEdit
	hintHidden    bool
	status        string
	unsubscribe   canvas.Unsubscribe
}

var _ term.Handler = (*Designer)(nil)

// New creates a designer for doc. It handles no input until Attach.
func New(doc *canvas.Document, opts Options) (*Designer, error) {
	if doc == nil {
		return nil, fmt.Errorf("designer: nil document")
	}
	if opts.Theme == "" {
		opts.Theme = themes[0].Name
	}
	theme, err := ThemeByName(opts.Theme)
	if err != nil {
		return nil, fmt.Errorf("designer: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = debug.Logger()
	}
	return &Designer{
		doc:       doc,
		overrides: drag.NewOverrideMap(),
		opts:      opts,
		theme:     theme,
		logger:    logger.With("component", "designer"),
		status:    "1-3 add a component, drag to move",
	}, nil
}

// Attach binds the designer to its host and creates the drag engine, paced
// by the host's frames.
func (d *Designer) Attach(host Host) error {
	if host == nil {
		return fmt.Errorf("designer: nil host")
	}
	d.host = host

	engine, err := drag.New(
		d.doc.Environment(func() drag.Rect { return d.regions().dragRect() }),
		host,
		drag.WithVisualOverride(d.overrides),
		drag.WithPointerCapture(d),
		drag.WithInteractionGuard(drag.Guards(d.mouseGuard(), d.hintGuard())),
		drag.WithSelector(d.doc),
		drag.WithSnapGrid(d.opts.SnapGrid),
		drag.WithMetrics(d.opts.Metrics),
		drag.WithLogger(d.logger),
		drag.WithOnSettle(d.settled),
	)
	if err != nil {
		return fmt.Errorf("designer: %w", err)
	}
	d.engine = engine

	d.unsubscribe = d.doc.Subscribe(func(ch canvas.Change) {
		if ch.Kind == canvas.ChangeDeleted {
			d.engine.Invalidate(ch.ID)
			if d.edit != nil && d.edit.id == ch.ID {
				d.edit = nil
			}
		}
		d.host.MarkDirty()
	})
	return nil
}

// Close detaches from the document.
func (d *Designer) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// Engine returns the drag engine, nil before Attach.
func (d *Designer) Engine() *drag.Engine {
	return d.engine
}

// Theme returns the active theme.
func (d *Designer) Theme() Theme {
	return d.theme
}

// Status returns the status line text.
func (d *Designer) Status() string {
	return d.status
}

// SetTheme switches theme by name.
func (d *Designer) SetTheme(name string) error {
	t, err := ThemeByName(name)
	if err != nil {
		return err
	}
	d.theme = t
	d.markDirty()
	return nil
}

// SetSnapGrid changes the snap grid used by later frames.
func (d *Designer) SetSnapGrid(grid float64) {
	d.opts.SnapGrid = grid
	if d.engine != nil {
		d.engine.SetSnapGrid(grid)
	}
}

// CapturePointer implements drag.PointerCapture.
func (d *Designer) CapturePointer(id string) {
	d.captured = id
}

// ReleasePointer implements drag.PointerCapture.
func (d *Designer) ReleasePointer(id string) {
	if d.captured == id {
		d.captured = ""
	}
}

// mouseGuard reports every motion event while dragging so the pointer is
// tracked even between button events.
func (d *Designer) mouseGuard() drag.InteractionGuard {
	return drag.GuardFunc(func() func() {
		prev := d.host.MouseMode()
		d.host.SetMouseMode(term.MouseAllMotion)
		return func() { d.host.SetMouseMode(prev) }
	})
}

// hintGuard hides the key hints in the header while dragging.
func (d *Designer) hintGuard() drag.InteractionGuard {
	return drag.GuardFunc(func() func() {
		d.hintHidden = true
		return func() { d.hintHidden = false }
	})
}

func (d *Designer) settled(r drag.Result) {
	switch r.Outcome {
	case drag.OutcomeCommitted:
		d.status = fmt.Sprintf("moved %s to (%d, %d)", shortID(r.ObjectID), round(r.Position.X), round(r.Position.Y))
	case drag.OutcomeCancelled:
		d.status = "drag cancelled"
	case drag.OutcomeVanished:
		d.status = fmt.Sprintf("%s was removed while dragging", shortID(r.ObjectID))
	}
	d.markDirty()
}

func (d *Designer) regions() regions {
	return computeRegions(d.width, d.height, d.opts.CanvasWidth, d.opts.CanvasHeight)
}

func (d *Designer) markDirty() {
	if d.host != nil {
		d.host.MarkDirty()
	}
}

// HandleEvent implements term.Handler.
func (d *Designer) HandleEvent(ev term.Event) {
	if d.engine == nil {
		return
	}
	switch e := ev.(type) {
	case term.ResizeEvent:
		d.width, d.height = e.Width, e.Height
	case term.MouseEvent:
		d.handleMouse(e)
	case term.KeyEvent:
		d.handleKey(e)
	case term.FocusEvent:
		if !e.Focused {
			d.engine.LoseCapture()
		}
	}
	d.markDirty()
}

func (d *Designer) handleMouse(e term.MouseEvent) {
	pointer := drag.Point{X: float64(e.X), Y: float64(e.Y)}

	// A captured pointer belongs to the session wherever it is.
	if d.captured != "" {
		switch e.Action {
		case term.MouseDrag, term.MouseMotion:
			d.engine.UpdatePointer(pointer)
		case term.MouseRelease:
			d.engine.EndDrag()
		}
		return
	}

	if e.Button != term.MouseLeft || e.Action != term.MousePress {
		return
	}
	// Clicking anywhere keeps the text typed so far.
	if d.edit != nil {
		d.saveEdit()
		d.edit = nil
	}

	h := d.hitTest(e.X, e.Y)
	switch h.kind {
	case hitPalette:
		d.add(h.pal)
	case hitDelete:
		d.delete(h.id)
	case hitComponent:
		d.doc.BringToFront(h.id)
		if _, err := d.engine.BeginDrag(h.id, pointer); err != nil {
			d.logger.Debug("begin drag failed", "object", h.id, "error", err)
		}
	case hitCanvas:
		d.doc.Select("")
	}
}

func (d *Designer) handleKey(e term.KeyEvent) {
	if d.edit != nil {
		d.handleEditKey(e)
		return
	}
	switch e.Key {
	case term.KeyCtrlC:
		d.quit()
	case term.KeyEscape:
		if d.engine.Active() {
			d.engine.Cancel()
			return
		}
		d.doc.Select("")
	case term.KeyDelete, term.KeyBackspace:
		if id := d.doc.Selected(); id != "" {
			d.delete(id)
		}
	case term.KeyUp:
		d.nudge(0, -step(e.Mod))
	case term.KeyDown:
		d.nudge(0, step(e.Mod))
	case term.KeyLeft:
		d.nudge(-step(e.Mod), 0)
	case term.KeyRight:
		d.nudge(step(e.Mod), 0)
	case term.KeyTab:
		d.cycleSelection()
	case term.KeyEnter:
		d.startEdit()
	case term.KeyRune:
		d.handleRune(e.Rune)
	}
}

func (d *Designer) handleRune(r rune) {
	switch r {
	case 'q':
		d.quit()
	case '1', '2', '3':
		d.add(canvas.Kinds()[r-'1'])
	case 't':
		d.theme = nextTheme(d.theme.Name)
		d.status = "theme: " + d.theme.Label
	case 'd':
		d.toggleFlag()
	case 'v':
		d.cycleButton("variant", canvas.ButtonVariants())
	case 's':
		d.cycleButton("size", canvas.ButtonSizes())
	case '+', '=':
		d.resizeGrid("columns", 1, canvas.MinGridColumns, canvas.MaxGridColumns)
	case '-':
		d.resizeGrid("columns", -1, canvas.MinGridColumns, canvas.MaxGridColumns)
	case ']':
		d.resizeGrid("rows", 1, canvas.MinGridRows, canvas.MaxGridRows)
	case '[':
		d.resizeGrid("rows", -1, canvas.MinGridRows, canvas.MaxGridRows)
	}
}

func step(mod term.Modifier) float64 {
	if mod&term.ModShift != 0 {
		return 5
	}
	return 1
}

func (d *Designer) quit() {
	if d.engine.Active() {
		d.engine.Cancel()
	}
	d.host.Stop()
}

func (d *Designer) add(kind canvas.Kind) {
	c, err := d.doc.Add(kind)
	if err != nil {
		d.status = err.Error()
		return
	}
	d.status = "added " + shortID(c.ID)
}

func (d *Designer) delete(id string) {
	if err := d.doc.Delete(id); err != nil {
		d.status = err.Error()
		return
	}
	d.status = "deleted " + shortID(id)
}

// nudge moves the selected component by (dx, dy) cells, kept inside the
// canvas. The component being dragged is left to the engine.
func (d *Designer) nudge(dx, dy float64) {
	id := d.doc.Selected()
	if id == "" || d.engine.Dragging(id) {
		return
	}
	c, ok := d.doc.Get(id)
	if !ok {
		return
	}
	canvasSize := d.regions().dragRect().Size()
	p := drag.ClampWithin(
		drag.Point{X: c.Position.X + dx, Y: c.Position.Y + dy},
		d.doc.Size(c.Kind), canvasSize, drag.Limits{},
	)
	if err := d.doc.SetPosition(id, p); err != nil {
		d.status = err.Error()
	}
}

// cycleSelection selects the next component in paint order.
func (d *Designer) cycleSelection() {
	if d.engine.Active() {
		return
	}
	comps := d.doc.Components()
	if len(comps) == 0 {
		return
	}
	next := 0
	sel := d.doc.Selected()
	for i, c := range comps {
		if c.ID == sel {
			next = (i + 1) % len(comps)
		}
	}
	d.doc.Select(comps[next].ID)
}

// toggleFlag flips the boolean property of the selected component: a
// button's disabled state or a card's image.
func (d *Designer) toggleFlag() {
	c, ok := d.doc.Get(d.doc.Selected())
	if !ok {
		return
	}
	var key string
	switch c.Kind {
	case canvas.KindButton:
		key = "disabled"
	case canvas.KindCard:
		key = "showImage"
	default:
		return
	}
	if err := d.doc.SetProp(c.ID, key, !c.Props.Bool(key)); err != nil {
		d.status = err.Error()
	}
}

// cycleButton advances the selected button's key to the next of values.
func (d *Designer) cycleButton(key string, values []string) {
	c, ok := d.doc.Get(d.doc.Selected())
	if !ok || c.Kind != canvas.KindButton {
		return
	}
	next := canvas.NextValue(values, c.Props.String(key))
	if err := d.doc.SetProp(c.ID, key, next); err != nil {
		d.status = err.Error()
		return
	}
	d.status = key + ": " + next
}

// resizeGrid changes a dimension of the selected bento grid by delta,
// kept within [lo, hi].
func (d *Designer) resizeGrid(key string, delta, lo, hi int) {
	c, ok := d.doc.Get(d.doc.Selected())
	if !ok || c.Kind != canvas.KindBentoGrid {
		return
	}
	def := canvas.DefaultProps(canvas.KindBentoGrid).Int(key, lo)
	n := min(max(c.Props.Int(key, def)+delta, lo), hi)
	if err := d.doc.SetProp(c.ID, key, n); err != nil {
		d.status = err.Error()
		return
	}
	d.status = key + ": " + strconv.Itoa(n)
}

// shortID trims the UUID suffix of generated IDs for display.
func shortID(id string) string {
	if len(id) > 18 {
		return id[:18]
	}
	return id
}
