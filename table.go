package periodic

import (
	"fmt"
	"time"

	"github.com/go-theft-auto/periodic/element"
)

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// DefaultFrameBudget stops the loop after about ten minutes at 60 Hz.
const DefaultFrameBudget uint64 = 36000

// Status messages reported through WithStatusHandler.
const (
	StatusStopped = "sketch stopped"
	StatusResumed = "sketch resumed"
)

// Table draws the interactive periodic table and its detail panel.
// It owns the UI state and advances it from input once per frame.
type Table struct {
	renderer     Renderer
	data         *element.Dataset
	style        Style
	ctx          *Context
	fontProvider FontProvider
	images       ImageStore
	clipboard    Clipboard

	state       UIState
	clock       time.Duration
	frameBudget uint64
	framesRun   uint64 // frames drawn since the last start
	onStatus    func(string)
	toasts      ToastQueue
	debug       *DebugCorner
	hints       bool

	cells     []Rect
	cellsSize float32
}

// TableOption configures a Table instance.
type TableOption func(*Table)

// WithStyle sets the table style.
func WithStyle(style Style) TableOption {
	return func(t *Table) { t.style = style }
}

// WithElementSize sets the initial cell size in pixels.
func WithElementSize(size float32) TableOption {
	return func(t *Table) {
		if size > 0 {
			t.style.ElementSize = size
		}
	}
}

// WithFrameBudget stops the loop after n frames. Zero disables the budget.
func WithFrameBudget(n uint64) TableOption {
	return func(t *Table) { t.frameBudget = n }
}

// WithStatusHandler sets the function receiving status changes such as
// StatusStopped.
func WithStatusHandler(fn func(string)) TableOption {
	return func(t *Table) { t.onStatus = fn }
}

// WithImageStore sets where element photos and Bohr images come from.
func WithImageStore(store ImageStore) TableOption {
	return func(t *Table) {
		if store != nil {
			t.images = store
		}
	}
}

// WithFontProvider sets the font provider. Without one the built-in
// bitmap font is used.
func WithFontProvider(fp FontProvider) TableOption {
	return func(t *Table) { t.fontProvider = fp }
}

// WithDebug shows the debug corner from the first frame.
func WithDebug(visible bool) TableOption {
	return func(t *Table) { t.state.DebugVisible = visible }
}

// WithHints toggles the key hint footer.
func WithHints(visible bool) TableOption {
	return func(t *Table) { t.hints = visible }
}

// WithSelected sets the initially selected atomic number.
func WithSelected(number int) TableOption {
	return func(t *Table) { t.state = Reduce(t.state, Event{Kind: EventSelect, Number: number}, 0) }
}

// WithSearch types text into the search box before the first frame.
func WithSearch(text string) TableOption {
	return func(t *Table) { t.state = Reduce(t.state, Event{Kind: EventPaste, Text: text}, 0) }
}

// WithClock starts the animation clock at d.
func WithClock(d time.Duration) TableOption {
	return func(t *Table) { t.clock = d }
}

// New creates a new Table instance.
func New(renderer Renderer, data *element.Dataset, opts ...TableOption) *Table {
	t := &Table{
		renderer:    renderer,
		data:        data,
		style:       DefaultStyle(),
		ctx:         NewContext(),
		images:      noImages{},
		state:       NewUIState(0),
		frameBudget: DefaultFrameBudget,
		debug:       NewDebugCorner(DefaultDebugSlots),
		hints:       true,
	}

	for _, opt := range opts {
		opt(t)
	}
	t.state.ElementSize = t.style.ElementSize

	return t
}

// State returns the current UI state.
func (t *Table) State() UIState {
	return t.state
}

// Stopped reports whether the loop is frozen.
func (t *Table) Stopped() bool {
	return t.state.Frozen
}

// Clock returns the animation clock.
func (t *Table) Clock() time.Duration {
	return t.clock
}

// Style returns the current style, with the zoomed element size applied.
func (t *Table) Style() Style {
	st := t.style
	st.ElementSize = t.state.ElementSize
	return st
}

// Toasts returns the toast queue, e.g. to add host messages.
func (t *Table) Toasts() *ToastQueue {
	return &t.toasts
}

// Resize notifies the table of a display size change.
func (t *Table) Resize(width, height int) {
	t.renderer.Resize(width, height)
}

// Frame runs one tick: it folds input into the UI state and, unless the
// loop is stopped, draws and renders the frame. rendered is false when
// no frame was produced.
func (t *Table) Frame(input *InputState, displaySize Vec2, deltaTime float32) (rendered bool, err error) {
	if !t.Update(input, deltaTime) {
		return false, nil
	}

	ctx := t.Begin(displaySize, deltaTime)
	t.Draw(ctx)
	if err := t.End(); err != nil {
		return false, err
	}
	t.finishFrame()
	return true, nil
}

// Update applies one frame of input and advances the clock. It returns
// false while the loop is stopped; only the freeze key is handled then.
func (t *Table) Update(input *InputState, deltaTime float32) bool {
	events := EventsFromInput(input, t.clipboardText)

	if t.state.Frozen {
		for _, ev := range events {
			if ev.Kind == EventFreeze {
				t.state.Frozen = false
				t.framesRun = 0
				t.status(StatusResumed, ToastInfo)
				break
			}
		}
		if t.state.Frozen {
			return false
		}
		events = nil
	}

	t.state = ReduceAll(t.state, events, t.clock)
	if t.state.Frozen {
		t.status(StatusStopped, ToastInfo)
		return false
	}

	t.clock += time.Duration(float64(deltaTime) * float64(time.Second))
	t.toasts.Advance(deltaTime)

	if input != nil && input.MouseDown(MouseButtonLeft) {
		hit := HitTest(t.cellBounds(), Vec2{X: input.MouseX, Y: input.MouseY})
		if hit > 0 && hit != t.state.Selected {
			t.state = Reduce(t.state, Event{Kind: EventSelect, Number: hit}, t.clock)
			logger.Debug("selected element", "number", hit)
		}
	}
	return true
}

// cellBounds returns the cell rectangles for the current element size.
func (t *Table) cellBounds() []Rect {
	st := t.Style()
	if t.cells == nil || t.cellsSize != st.ElementSize {
		var elements []element.Element
		if t.data != nil {
			elements = t.data.Elements
		}
		t.cells = Cells(elements, st.ElementSize, st.Padding())
		t.cellsSize = st.ElementSize
	}
	return t.cells
}

// Begin starts a new frame and returns the drawing context.
func (t *Table) Begin(displaySize Vec2, deltaTime float32) *Context {
	ctx := t.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.SetStyle(t.Style())
	ctx.FontTextureID = t.renderer.FontTextureID()
	ctx.SetFontProvider(t.fontProvider)
	ctx.FrameCount++
	ctx.Reset(displaySize, deltaTime, t.clock)

	return ctx
}

// Draw draws the whole frame for the current state.
func (t *Table) Draw(ctx *Context) {
	st := ctx.Style()
	ctx.DrawList.AddRect(0, 0, ctx.DisplaySize.X, ctx.DisplaySize.Y, st.Background.Packed())

	var elements []element.Element
	if t.data != nil {
		elements = t.data.Elements
	}
	matches := MatchSet(elements, t.state.Search.Buffer)

	switch {
	case len(matches) == 1:
		if e, ok := t.data.ByNumber(matches[0]); ok {
			t.drawCard(ctx, e)
		} else {
			drawNoSelection(ctx)
		}
	default:
		drawGrid(ctx, elements, newMatcher(t.state.Search.Buffer))
		if e, ok := t.data.ByNumber(t.state.Selected); ok {
			t.drawDetail(ctx, e)
		} else {
			drawNoSelection(ctx)
		}
	}

	t.drawSearchBox(ctx, t.state.Search)
	ctx.drawToasts(&t.toasts)

	if t.hints {
		ctx.HintFooter(DefaultHints...)
		if t.state.Search.Buffer != "" {
			ctx.HintStatus("%d of %d elements match", len(matches), len(elements))
		}
	}

	if t.state.DebugVisible {
		t.debug.SetText(fmt.Sprintf("frameCount: %d", ctx.FrameCount), 0)
		fps := float32(0)
		if ctx.DeltaTime > 0 {
			fps = 1 / ctx.DeltaTime
		}
		t.debug.SetText(fmt.Sprintf("fps: %.0f", fps), 1)
		t.debug.SetText(fmt.Sprintf("selected: %d", t.state.Selected), 2)
		t.debug.SetText(fmt.Sprintf("matches: %d", len(matches)), 3)
		t.debug.SetText(fmt.Sprintf("elementSize: %.0f", st.ElementSize), 4)
		t.debug.ShowBottom(ctx)
	}
}

// End finishes the frame and renders it.
func (t *Table) End() error {
	if t.ctx.DrawList == nil {
		return nil
	}

	err := t.renderer.Render(t.ctx.DrawList)

	ReleaseDrawList(t.ctx.DrawList)
	t.ctx.DrawList = nil

	return err
}

// finishFrame counts the frame against the budget and stops the loop
// once it is used up.
func (t *Table) finishFrame() {
	t.framesRun++
	if t.frameBudget > 0 && t.framesRun > t.frameBudget {
		t.state.Frozen = true
		logger.Info("frame budget reached", "frames", t.framesRun)
		t.status(StatusStopped, ToastWarning)
	}
}

// status reports a status change to the host and as a toast.
func (t *Table) status(msg string, kind ToastKind) {
	logger.Info(msg)
	t.toasts.Push(msg, kind)
	if t.onStatus != nil {
		t.onStatus(msg)
	}
}
